package keys

import "sync"

// Selector holds the discovered key files and the cursor into them.
// All methods are safe for concurrent use.
type Selector struct {
	mu       sync.RWMutex
	files    []string
	selected int
}

// NewSelector returns an empty selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Replace swaps in a new file list. The cursor stays on the previously
// selected path when it is still present and is clamped into range otherwise,
// in the same critical section as the swap.
func (s *Selector) Replace(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current string
	if s.selected < len(s.files) {
		current = s.files[s.selected]
	}

	s.files = cloneFiles(files)

	next := s.selected
	if current != "" {
		for i, f := range s.files {
			if f == current {
				next = i
				break
			}
		}
	}
	s.selected = clampIndex(next, len(s.files))
}

// SelectedFile returns the file under the cursor, or false when the list is empty.
func (s *Selector) SelectedFile() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected < 0 || s.selected >= len(s.files) {
		return "", false
	}
	return s.files[s.selected], true
}

// SelectNext moves the cursor down one entry, stopping at the last file.
func (s *Selector) SelectNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected < len(s.files)-1 {
		s.selected++
	}
}

// SelectPrevious moves the cursor up one entry, stopping at the first file.
func (s *Selector) SelectPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected > 0 {
		s.selected--
	}
}

// Files returns a copy of the file list.
func (s *Selector) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFiles(s.files)
}

// Selected returns the cursor index.
func (s *Selector) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Len returns the number of files.
func (s *Selector) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// View returns the file list and cursor from a single read.
func (s *Selector) View() ([]string, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFiles(s.files), s.selected
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func cloneFiles(files []string) []string {
	if len(files) == 0 {
		return nil
	}
	dup := make([]string, len(files))
	copy(dup, files)
	return dup
}
