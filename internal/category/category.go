package category

// Def describes one spending category shown in the history view.
type Def struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Generic is the fallback used when a transaction references a category id
// that is not in the table. Unknown categories degrade, they never fail.
var Generic = Def{ID: "other", Name: "Other", Icon: "💳"}

var defs = []Def{
	{"food", "Food & Drink", "🍽️"},
	{"groceries", "Groceries", "🛒"},
	{"transport", "Transport", "🚌"},
	{"entertainment", "Entertainment", "🎬"},
	{"shopping", "Shopping", "🛍️"},
	{"health", "Health", "💊"},
	{"bills", "Bills & Utilities", "🧾"},
	{"subscriptions", "Subscriptions", "📺"},
	{"other", "Other", "💳"},
}

var byID = func() map[string]Def {
	m := make(map[string]Def, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return m
}()

// All returns the fixed category table in display order.
func All() []Def {
	out := make([]Def, len(defs))
	copy(out, defs)
	return out
}

// ByID resolves a category id, falling back to Generic for unknown ids.
func ByID(id string) Def {
	if d, ok := byID[id]; ok {
		return d
	}
	return Generic
}

// Valid reports whether id is a known category id.
func Valid(id string) bool {
	_, ok := byID[id]
	return ok
}
