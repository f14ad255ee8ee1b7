//******************************************************************************************************
//  main.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  07/31/2026 - Initial version of source code.
//
//******************************************************************************************************

// Command directip-client submits a single MT message to an Iridium Direct-IP Gateway and prints
// the Confirmation it reads back.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	directip "github.com/iridium-sbd/directip-go"
	"github.com/iridium-sbd/directip-go/ie"
	"github.com/iridium-sbd/directip-go/mt"
)

func main() {
	app := cli.NewApp()
	app.Name = "directip-client"
	app.Usage = "submit a Mobile-Terminated message to an Iridium Direct-IP Gateway"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "server", Usage: "Gateway address as host:port"},
		cli.StringFlag{Name: "imei", Usage: "15-digit destination IMEI"},
		cli.UintFlag{Name: "msg-id", Usage: "client-assigned message ID"},
		cli.StringFlag{Name: "encoding", Value: "ascii", Usage: "payload encoding: ascii, hex, binary"},
		cli.BoolFlag{Name: "from-file", Usage: "treat the payload argument as a file path"},
		cli.BoolFlag{Name: "dry-run", Usage: "encode and print the message without connecting"},
		cli.BoolFlag{Name: "verbose", Usage: "log each step of the submission (repeatable)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "directip-client:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	correlationID := uuid.New().String()
	verbose := c.Bool("verbose")
	logf := func(format string, args ...interface{}) {
		if verbose {
			fmt.Fprintf(os.Stderr, "[%s] "+format+"\n", append([]interface{}{correlationID}, args...)...)
		}
	}

	server := c.String("server")
	imeiFlag := c.String("imei")
	if server == "" || imeiFlag == "" || !c.IsSet("msg-id") {
		return fmt.Errorf("--server, --imei and --msg-id are required")
	}
	if len(imeiFlag) != ie.IMEILen {
		return fmt.Errorf("--imei must be exactly %d digits", ie.IMEILen)
	}

	var imei ie.IMEI
	copy(imei[:], imeiFlag)

	payload, err := readPayload(c)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	msg, err := mt.NewMTMessageBuilder().
		ClientMsgID(uint32(c.Uint("msg-id"))).
		IMEI(imei).
		Payload(payload).
		Build()
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	encoded, err := directip.NewMTMessage(msg).ToVec()
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	if c.Bool("dry-run") {
		fmt.Println(hex.EncodeToString(encoded))
		return nil
	}

	logf("dialing %s", server)
	conn, err := net.Dial("tcp", server)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", server, err)
	}
	defer conn.Close()

	logf("writing %d bytes", len(encoded))
	if _, err := conn.Write(encoded); err != nil {
		return fmt.Errorf("writing to %s: %w", server, err)
	}

	logf("reading confirmation")
	reply, err := directip.FromReader(conn)
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}

	confirmation, ok := reply.MT.Confirmation()
	if !ok {
		return fmt.Errorf("gateway reply did not carry a Confirmation IE")
	}

	fmt.Printf("id_reference=%d status=%s\n", confirmation.IDReference, confirmation.MessageStatus)
	return nil
}

// readPayload resolves the payload bytes from the positional argument, honoring --from-file and
// --encoding, or from stdin when no argument is given.
func readPayload(c *cli.Context) ([]byte, error) {
	var raw []byte
	var err error

	arg := c.Args().First()
	switch {
	case c.Bool("from-file") && arg != "":
		raw, err = os.ReadFile(arg)
	case arg != "":
		raw = []byte(arg)
	default:
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	switch c.String("encoding") {
	case "ascii", "binary":
		return raw, nil
	case "hex":
		return hex.DecodeString(string(raw))
	default:
		return nil, fmt.Errorf("unknown --encoding %q", c.String("encoding"))
	}
}
