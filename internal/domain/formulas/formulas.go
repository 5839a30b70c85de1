package formulas

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/formula"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
)

var (
	ErrEmptyName     = errors.New("formula name is required")
	ErrEmptyTemplate = errors.New("formula template is required")
	ErrNotFound      = errors.New("formula not found")
)

// Formula is one evaluable template. Variables are always derived from
// Template.
type Formula struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Template    string           `json:"template"`
	Notation    string           `json:"notation,omitempty"`
	Variables   []string         `json:"variables"`
	Description string           `json:"description"`
	Subject     string           `json:"subject,omitempty"`
	Topic       string           `json:"topic,omitempty"`
	SubjectKey  string           `json:"subject_key,omitempty"`
	TopicKey    string           `json:"topic_key,omitempty"`
	Example     formula.Bindings `json:"example,omitempty"`
	Custom      bool             `json:"custom"`
}

func (f Formula) clone() Formula {
	out := f
	out.Variables = append([]string(nil), f.Variables...)
	if f.Example != nil {
		out.Example = make(formula.Bindings, len(f.Example))
		for k, v := range f.Example {
			out.Example[k] = v
		}
	}
	return out
}

// Topic groups formulas within a subject
type Topic struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Formulas []Formula `json:"formulas"`
}

// Subject groups topics
type Subject struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

func (s Subject) clone() Subject {
	out := Subject{Key: s.Key, Name: s.Name, Topics: make([]Topic, len(s.Topics))}
	for i, t := range s.Topics {
		ct := Topic{Key: t.Key, Name: t.Name, Formulas: make([]Formula, len(t.Formulas))}
		for j, f := range t.Formulas {
			ct.Formulas[j] = f.clone()
		}
		out.Topics[i] = ct
	}
	return out
}

// Favorite is a formula marked by the user. ID is assigned when the
// favorite is created and is unrelated to the formula's own ID.
type Favorite struct {
	ID      id.FavoriteID `json:"id"`
	Formula Formula       `json:"formula"`
	AddedAt time.Time     `json:"added_at"`
}

// NewFavorite wraps f in a favorite with a fresh id
func NewFavorite(f Formula) Favorite {
	return Favorite{
		ID:      id.NewFavoriteID(),
		Formula: f.clone(),
		AddedAt: time.Now(),
	}
}

// NewCustomFormula builds a user formula. Variables are extracted from
// template; the name is not checked for uniqueness.
func NewCustomFormula(name, template, description string) (Formula, error) {
	name = strings.TrimSpace(name)
	template = strings.TrimSpace(template)
	if name == "" {
		return Formula{}, ErrEmptyName
	}
	if template == "" {
		return Formula{}, ErrEmptyTemplate
	}
	return Formula{
		ID:          id.NewFormulaID().String(),
		Name:        name,
		Template:    template,
		Variables:   formula.ExtractVariables(template),
		Description: strings.TrimSpace(description),
		Custom:      true,
	}, nil
}

// Registry holds the read-only formula catalog
type Registry struct {
	mu       sync.RWMutex
	subjects []Subject
	logger   *zap.Logger
}

// NewRegistry creates a registry seeded with the built-in catalog
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{logger: logger}
	r.subjects = normalize(builtinSubjects())
	return r
}

// Merge adds subjects to the catalog. Subjects and topics with a known key
// are extended; new ones are appended.
func (r *Registry) Merge(subjects []Subject) error {
	for _, s := range subjects {
		if s.Key == "" {
			return fmt.Errorf("subject key is required")
		}
		for _, t := range s.Topics {
			if t.Key == "" {
				return fmt.Errorf("topic key is required in subject %s", s.Key)
			}
			for _, f := range t.Formulas {
				if strings.TrimSpace(f.Name) == "" {
					return fmt.Errorf("%w in %s/%s", ErrEmptyName, s.Key, t.Key)
				}
				if strings.TrimSpace(f.Template) == "" {
					return fmt.Errorf("%w: %s", ErrEmptyTemplate, f.Name)
				}
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, s := range subjects {
		si := indexSubject(r.subjects, s.Key)
		if si < 0 {
			r.subjects = append(r.subjects, Subject{Key: s.Key, Name: s.Name})
			si = len(r.subjects) - 1
		}
		for _, t := range s.Topics {
			ti := indexTopic(r.subjects[si].Topics, t.Key)
			if ti < 0 {
				r.subjects[si].Topics = append(r.subjects[si].Topics, Topic{Key: t.Key, Name: t.Name})
				ti = len(r.subjects[si].Topics) - 1
			}
			for _, f := range t.Formulas {
				r.subjects[si].Topics[ti].Formulas = append(r.subjects[si].Topics[ti].Formulas, f.clone())
			}
			added += len(t.Formulas)
		}
	}
	r.subjects = normalize(r.subjects)

	r.logger.Info("Merged formula catalog", zap.Int("formulas", added))
	return nil
}

// Subjects returns a copy of the catalog in order
func (r *Registry) Subjects() []Subject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subject, len(r.subjects))
	for i, s := range r.subjects {
		out[i] = s.clone()
	}
	return out
}

// Subject returns one subject by key
func (r *Registry) Subject(key string) (Subject, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := indexSubject(r.subjects, key); i >= 0 {
		return r.subjects[i].clone(), true
	}
	return Subject{}, false
}

// Formula looks up a formula by subject key, topic key and name
func (r *Registry) Formula(subject, topic, name string) (Formula, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	si := indexSubject(r.subjects, subject)
	if si < 0 {
		return Formula{}, false
	}
	ti := indexTopic(r.subjects[si].Topics, topic)
	if ti < 0 {
		return Formula{}, false
	}
	for _, f := range r.subjects[si].Topics[ti].Formulas {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return Formula{}, false
}

// ByID looks up a catalog formula by id
func (r *Registry) ByID(formulaID string) (Formula, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subjects {
		for _, t := range s.Topics {
			for _, f := range t.Formulas {
				if f.ID == formulaID {
					return f.clone(), nil
				}
			}
		}
	}
	return Formula{}, fmt.Errorf("%w: %s", ErrNotFound, formulaID)
}

// Search returns every formula whose name, description, subject name or
// topic name contains query, ignoring case. Results keep catalog order and
// an empty query matches everything.
func (r *Registry) Search(query string) []Formula {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	results := []Formula{}
	for _, s := range r.subjects {
		subjectHit := strings.Contains(strings.ToLower(s.Name), q)
		for _, t := range s.Topics {
			topicHit := subjectHit || strings.Contains(strings.ToLower(t.Name), q)
			for _, f := range t.Formulas {
				if topicHit ||
					strings.Contains(strings.ToLower(f.Name), q) ||
					strings.Contains(strings.ToLower(f.Description), q) {
					results = append(results, f.clone())
				}
			}
		}
	}
	return results
}

// normalize fills derived fields: ids, subject and topic labels, variables
func normalize(subjects []Subject) []Subject {
	for si := range subjects {
		s := &subjects[si]
		for ti := range s.Topics {
			t := &s.Topics[ti]
			for fi := range t.Formulas {
				f := &t.Formulas[fi]
				f.Variables = formula.ExtractVariables(f.Template)
				f.Subject, f.SubjectKey = s.Name, s.Key
				f.Topic, f.TopicKey = t.Name, t.Key
				if f.ID == "" {
					f.ID = s.Key + "." + t.Key + "." + slug(f.Name)
				}
			}
		}
	}
	return subjects
}

func indexSubject(subjects []Subject, key string) int {
	for i, s := range subjects {
		if s.Key == key {
			return i
		}
	}
	return -1
}

func indexTopic(topics []Topic, key string) int {
	for i, t := range topics {
		if t.Key == key {
			return i
		}
	}
	return -1
}

func slug(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
