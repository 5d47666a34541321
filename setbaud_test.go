//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRates(t *testing.T) {
	rates := StandardRates()
	require.Len(t, rates, 30)
	require.True(t, sort.IntsAreSorted(rates))
	require.Equal(t, 0, rates[0])
	require.Equal(t, 4000000, rates[len(rates)-1])

	// callers get their own copy
	rates[0] = 12345
	require.Equal(t, 0, StandardRates()[0])
}

func TestIsStandard(t *testing.T) {
	for _, r := range []int{0, 50, 9600, 115200, 921600, 4000000} {
		require.True(t, IsStandard(r), "%d", r)
	}
	for _, r := range []int{-1, 1, 250000, 31250, 3000000, 4000001} {
		require.False(t, IsStandard(r), "%d", r)
	}
}

func TestBorrowKeepsDescriptor(t *testing.T) {
	require.Equal(t, uintptr(42), Borrow(42).Fd())
	require.Equal(t, uintptr(0), Handle{}.Fd())
}

func TestPortErrorStrings(t *testing.T) {
	var err error = &PortError{code: IOCtlFailed}
	require.Equal(t, "Could not set port speed", err.Error())

	var portErr *PortError
	require.True(t, errors.As(err, &portErr))
	require.Equal(t, IOCtlFailed, portErr.Code())

	require.Equal(t, "Function not implemented", PortError{code: FunctionNotImplemented}.Error())
	require.Equal(t, "Other error", PortError{code: PortErrorCode(99)}.Error())
}
