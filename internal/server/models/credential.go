package models

import "time"

// ServiceCredential stores connection details for an external service.
// Details holds JSON-compatible values only.
type ServiceCredential struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"user_id"`
	Service   string         `json:"service"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone deep-copies Details so callers cannot mutate stored state.
func (c *ServiceCredential) Clone() *ServiceCredential {
	n := *c
	n.Details = cloneMap(c.Details)
	return &n
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
