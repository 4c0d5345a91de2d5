// SPDX-License-Identifier: MIT

package handle

import "github.com/katalvlaran/lvgsl/native"

// Scope collects the borrows of one multi-operand call. After the first
// failure every later borrow is skipped and returns native.Null; Err reports
// that failure. Release ends every view taken, newest first.
//
//	var s handle.Scope
//	x := s.Shared(xo)
//	y := s.Exclusive(yo)
//	defer s.Release()
//	if err := s.Err(); err != nil {
//		return err
//	}
type Scope struct {
	views []interface{ Release() }
	err   error
}

// Shared borrows o read-only within the scope.
func (s *Scope) Shared(o *Owner) native.Handle {
	if s.err != nil {
		return native.Null
	}
	v, err := o.Shared()
	if err != nil {
		s.err = err
		return native.Null
	}
	s.views = append(s.views, v)

	return v.Handle()
}

// Exclusive borrows o mutably within the scope.
func (s *Scope) Exclusive(o *Owner) native.Handle {
	if s.err != nil {
		return native.Null
	}
	v, err := o.Exclusive()
	if err != nil {
		s.err = err
		return native.Null
	}
	s.views = append(s.views, v)

	return v.Handle()
}

// Err returns the first borrow failure, or nil.
func (s *Scope) Err() error { return s.err }

// Release ends every view of the scope. Safe to call more than once.
func (s *Scope) Release() {
	for i := len(s.views) - 1; i >= 0; i-- {
		s.views[i].Release()
	}
	s.views = s.views[:0]
}
