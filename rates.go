//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

// standardRates are the speeds accepted by the portable termios API,
// in ascending order.
var standardRates = []int{
	0,
	50,
	75,
	110,
	134,
	150,
	200,
	300,
	600,
	1200,
	1800,
	2400,
	4800,
	9600,
	19200,
	38400,
	57600,
	115200,
	230400,
	460800,
	500000,
	576000,
	921600,
	1000000,
	1152000,
	1500000,
	2000000,
	2500000,
	3500000,
	4000000,
}

var standardRatesSet = func() map[int]bool {
	m := make(map[int]bool, len(standardRates))
	for _, r := range standardRates {
		m[r] = true
	}
	return m
}()

// StandardRates returns the baud rates that do not need SetBaud.
func StandardRates() []int {
	res := make([]int, len(standardRates))
	copy(res, standardRates)
	return res
}

// IsStandard reports whether baud is one of StandardRates.
func IsStandard(baud int) bool {
	return standardRatesSet[baud]
}
