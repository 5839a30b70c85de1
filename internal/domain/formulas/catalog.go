package formulas

import "github.com/GriffinCanCode/MathCore/backend/internal/providers/math/formula"

func ex(s string) formula.Bindings { return formula.ParseExample(s) }

// builtinSubjects is the shipped catalog. Templates use the evaluator's
// vocabulary; Notation keeps the textbook form.
func builtinSubjects() []Subject {
	return []Subject{
		{
			Key:  "algebra",
			Name: "Algebra",
			Topics: []Topic{
				{
					Key:  "linear_equations",
					Name: "Linear Equations",
					Formulas: []Formula{
						{Name: "Slope-Intercept Form", Template: "m * x + b", Notation: "y = mx + b",
							Description: "Where m is slope and b is y-intercept", Example: ex("m=2, x=3, b=1")},
						{Name: "Point-Slope Form", Template: "m * (x - x1) + y1", Notation: "y - y₁ = m(x - x₁)",
							Description: "Using a point and slope", Example: ex("m=2, x=5, x1=1, y1=3")},
						{Name: "Standard Form", Template: "(C - A * x) / B", Notation: "Ax + By = C",
							Description: "General linear equation form", Example: ex("A=2, B=4, C=8, x=2")},
					},
				},
				{
					Key:  "quadratic_equations",
					Name: "Quadratic Equations",
					Formulas: []Formula{
						{Name: "Quadratic Formula", Template: "(-b + sqrt(b^2 - 4*a*c)) / (2*a)", Notation: "x = (-b ± √(b² - 4ac)) / 2a",
							Description: "Solves ax² + bx + c = 0", Example: ex("a=1, b=-5, c=6")},
						{Name: "Vertex Form", Template: "a * (x - h)^2 + k", Notation: "y = a(x - h)² + k",
							Description: "Where (h,k) is the vertex", Example: ex("a=1, x=3, h=1, k=2")},
						{Name: "Discriminant", Template: "b^2 - 4*a*c", Notation: "Δ = b² - 4ac",
							Description: "Determines number of solutions", Example: ex("a=1, b=-5, c=6")},
					},
				},
			},
		},
		{
			Key:  "geometry",
			Name: "Geometry",
			Topics: []Topic{
				{
					Key:  "area_perimeter",
					Name: "Area and Perimeter",
					Formulas: []Formula{
						{Name: "Rectangle Area", Template: "length * width", Notation: "A = l × w",
							Description: "Length times width", Example: ex("length=10, width=5")},
						{Name: "Circle Area", Template: "pi * r^2", Notation: "A = πr²",
							Description: "Pi times radius squared", Example: ex("r=5")},
						{Name: "Triangle Area", Template: "0.5 * base * height", Notation: "A = ½bh",
							Description: "Half base times height", Example: ex("base=8, height=6")},
						{Name: "Circle Circumference", Template: "2 * pi * r", Notation: "C = 2πr",
							Description: "Two pi times radius", Example: ex("r=5")},
					},
				},
				{
					Key:  "pythagorean",
					Name: "Pythagorean Theorem",
					Formulas: []Formula{
						{Name: "Pythagorean Theorem", Template: "sqrt(a^2 + b^2)", Notation: "a² + b² = c²",
							Description: "Find hypotenuse of right triangle", Example: ex("a=3, b=4")},
						{Name: "Distance Formula", Template: "sqrt((x2-x1)^2 + (y2-y1)^2)", Notation: "d = √[(x₂-x₁)² + (y₂-y₁)²]",
							Description: "Distance between two points", Example: ex("x1=0, y1=0, x2=3, y2=4")},
					},
				},
				{
					Key:  "volume",
					Name: "Volume",
					Formulas: []Formula{
						{Name: "Sphere Volume", Template: "(4/3) * pi * r^3", Notation: "V = ⁴⁄₃πr³",
							Description: "Volume of a sphere", Example: ex("r=3")},
						{Name: "Cylinder Volume", Template: "pi * r^2 * h", Notation: "V = πr²h",
							Description: "Volume of a cylinder", Example: ex("r=2, h=10")},
					},
				},
			},
		},
		{
			Key:  "calculus",
			Name: "Calculus",
			Topics: []Topic{
				{
					Key:  "derivatives",
					Name: "Derivatives",
					Formulas: []Formula{
						{Name: "Power Rule", Template: "n * x^(n - 1)", Notation: "d/dx[xⁿ] = nxⁿ⁻¹",
							Description: "Derivative of power functions", Example: ex("n=3, x=2")},
						{Name: "Product Rule", Template: "du * v + u * dv", Notation: "d/dx[uv] = u'v + uv'",
							Description: "Derivative of products", Example: ex("u=2, du=1, v=3, dv=4")},
						{Name: "Chain Rule", Template: "dfg * dg", Notation: "d/dx[f(g(x))] = f'(g(x)) × g'(x)",
							Description: "Derivative of compositions", Example: ex("dfg=3, dg=2")},
					},
				},
			},
		},
		{
			Key:  "trigonometry",
			Name: "Trigonometry",
			Topics: []Topic{
				{
					Key:  "basic_functions",
					Name: "Basic Functions",
					Formulas: []Formula{
						{Name: "Sine", Template: "opposite / hypotenuse", Notation: "sin(θ) = opposite/hypotenuse",
							Description: "Sine ratio", Example: ex("opposite=3, hypotenuse=5")},
						{Name: "Cosine", Template: "adjacent / hypotenuse", Notation: "cos(θ) = adjacent/hypotenuse",
							Description: "Cosine ratio", Example: ex("adjacent=4, hypotenuse=5")},
						{Name: "Tangent", Template: "opposite / adjacent", Notation: "tan(θ) = opposite/adjacent",
							Description: "Tangent ratio", Example: ex("opposite=3, adjacent=4")},
					},
				},
			},
		},
		{
			Key:  "physics",
			Name: "Physics",
			Topics: []Topic{
				{
					Key:  "mechanics",
					Name: "Mechanics",
					Formulas: []Formula{
						{Name: "Velocity", Template: "distance / time",
							Description: "Average velocity", Example: ex("distance=100, time=5")},
						{Name: "Acceleration", Template: "(vf - vi) / time",
							Description: "Average acceleration", Example: ex("vf=20, vi=5, time=3")},
						{Name: "Force (Newton's 2nd Law)", Template: "mass * acceleration", Notation: "F = ma",
							Description: "Force = mass × acceleration", Example: ex("mass=10, acceleration=9.8")},
						{Name: "Kinetic Energy", Template: "0.5 * mass * velocity^2", Notation: "KE = ½mv²",
							Description: "Kinetic energy of moving object", Example: ex("mass=5, velocity=10")},
					},
				},
			},
		},
		{
			Key:  "finance",
			Name: "Finance",
			Topics: []Topic{
				{
					Key:  "interest",
					Name: "Interest",
					Formulas: []Formula{
						{Name: "Simple Interest", Template: "principal * rate * time",
							Description: "Simple interest calculation", Example: ex("principal=1000, rate=0.05, time=2")},
						{Name: "Compound Interest", Template: "principal * (1 + rate)^time",
							Description: "Compound interest calculation", Example: ex("principal=1000, rate=0.05, time=2")},
						{Name: "Periodic Compound Interest", Template: "P * (1 + r/n)^(n*t)", Notation: "A = P(1 + r/n)^(nt)",
							Description: "Compound interest with n compounding periods per year", Example: ex("P=1000, r=0.05, n=12, t=2")},
					},
				},
				{
					Key:  "loans",
					Name: "Loans",
					Formulas: []Formula{
						{Name: "Monthly Payment", Template: "(principal * rate * (1 + rate)^months) / ((1 + rate)^months - 1)",
							Description: "Monthly loan payment", Example: ex("principal=10000, rate=0.005, months=36")},
					},
				},
			},
		},
	}
}
