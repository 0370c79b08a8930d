package session

// AssistKey identifies one in-flight AI-assist target: a row plus the field
// the operation will write into.
type AssistKey struct {
	RowID string
	Field string
}

// BeginAssist registers a new in-flight assist call for key and returns its
// generation. A later BeginAssist for the same key supersedes this one.
func (s *Session) BeginAssist(key AssistKey) uint64 {
	s.gensMu.Lock()
	defer s.gensMu.Unlock()
	s.assistGens[key]++
	return s.assistGens[key]
}

// AssistCurrent reports whether gen is still the latest generation begun for
// key. A resolution that is no longer current must be discarded so that the
// most recent user intent for the field wins. Safe to call from inside a
// Mutate* callback.
func (s *Session) AssistCurrent(key AssistKey, gen uint64) bool {
	s.gensMu.Lock()
	defer s.gensMu.Unlock()
	return s.assistGens[key] == gen
}
