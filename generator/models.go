package generator

// Model is one entry of the model menu.
type Model struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// 免费额度可用的模型，按展示顺序排列。
var menu = []Model{
	{Name: "Qwen 2.5 Coder", ID: "Qwen/Qwen2.5-Coder-7B-Instruct"},
	{Name: "Meta Llama 3.2", ID: "meta-llama/Llama-3.2-3B-Instruct"},
	{Name: "Google Gemma 2", ID: "google/gemma-2-2b-it"},
}

// Models returns a copy of the menu.
func Models() []Model {
	out := make([]Model, len(menu))
	copy(out, menu)
	return out
}

// DefaultModel 菜单第一项。
func DefaultModel() Model {
	return menu[0]
}

// LookupModel matches either the display name or the model ID.
func LookupModel(key string) (Model, bool) {
	for _, m := range menu {
		if m.Name == key || m.ID == key {
			return m, true
		}
	}
	return Model{}, false
}
