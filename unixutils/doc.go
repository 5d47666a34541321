//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package unixutils provides the unix descriptors (pipes and
// pseudo-terminals) and the select helper used to exercise setbaud
// against a real kernel.
package unixutils
