package storage

import "fmt"

// Memory is a process-local slot store with the same semantics as Store.
// It backs ephemeral sessions and tests.
type Memory struct {
	items map[string]string
	quota int64

	// FailWrites makes every SetItem fail with this error when non-nil.
	FailWrites error
	// FailReads makes every GetItem fail with this error when non-nil.
	FailReads error
}

func NewMemory(quota int64) *Memory {
	return &Memory{items: map[string]string{}, quota: quota}
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	if m.FailReads != nil {
		return "", false, m.FailReads
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if m.quota > 0 {
		var used int64
		for k, v := range m.items {
			if k == key {
				continue
			}
			used += itemSize(k, v)
		}
		if used+itemSize(key, value) > m.quota {
			return fmt.Errorf("set %q: %w", key, ErrQuotaExceeded)
		}
	}
	m.items[key] = value
	return nil
}
