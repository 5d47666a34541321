//
// Copyright 2015 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud_test

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/abakum/go-setbaud"
)

func ExampleSetBaudConn() {
	port, err := os.OpenFile("/dev/ttyUSB0", os.O_RDWR, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	// DMX512 runs at 250000 baud, which no termios constant covers
	if err := setbaud.SetBaudConn(port, 250000); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Port set to 250000")
}

func ExampleSetBaud() {
	port, err := os.OpenFile("/dev/ttyACM0", os.O_RDWR, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	baud := 31250
	if setbaud.IsStandard(baud) {
		fmt.Println("The portable API can handle this speed")
		return
	}
	err = setbaud.SetBaud(setbaud.Borrow(port.Fd()), baud)
	var portErr *setbaud.PortError
	if errors.As(err, &portErr) && portErr.Code() == setbaud.IOCtlFailed {
		log.Fatal("The driver refused the speed")
	}
	fmt.Printf("Port set to %v\n", baud)
}
