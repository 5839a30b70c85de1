package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

var (
	ErrInvalidToolID   = errors.New("invalid tool ID format")
	ErrServiceNotFound = errors.New("service not found")
)

// Registry manages service discovery and execution
type Registry struct {
	mu       sync.RWMutex
	services map[string]Provider
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]Provider)}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[def.ID] = provider
	return nil
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.services[serviceID]
	return p, ok
}

// List returns registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]types.Service, 0, len(r.services))
	for _, provider := range r.services {
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	for _, def := range r.List(nil) {
		if score := relevance(intentLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Execute runs a service tool. The service is the tool ID prefix before
// the first dot.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return failed(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		msg := fmt.Sprintf("%v: %s", ErrServiceNotFound, serviceID)
		return failed(msg), fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	for _, def := range r.List(nil) {
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func relevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		if len(word) > 3 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, capability := range service.Capabilities {
		if strings.Contains(intent, strings.ReplaceAll(strings.ToLower(capability), "_", " ")) {
			score += 3.0
		}
	}

	// Check tools
	for _, tool := range service.Tools {
		if strings.Contains(intent, strings.ToLower(tool.Name)) {
			score += 4.0
		}
	}

	return score
}

func failed(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
