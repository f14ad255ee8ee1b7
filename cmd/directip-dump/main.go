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

// Command directip-dump decodes a single captured .isbd envelope and prints it to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/araddon/dateparse"
	"github.com/urfave/cli"

	directip "github.com/iridium-sbd/directip-go"
	"github.com/iridium-sbd/directip-go/mo"
	"github.com/iridium-sbd/directip-go/mt"
)

func main() {
	app := cli.NewApp()
	app.Name = "directip-dump"
	app.Usage = "decode and print a captured Direct-IP .isbd envelope"
	app.ArgsUsage = "<path>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "direction", Usage: "print only MT or MO"},
		cli.BoolFlag{Name: "imei", Usage: "print only the colon-separated lowercase hex IMEI"},
		cli.StringFlag{Name: "since", Usage: "skip MO messages with a time_of_session before this human-entered time"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "directip-dump:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("a .isbd file path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	msg, err := directip.FromReader(f)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	if since := c.String("since"); since != "" {
		threshold, err := dateparse.ParseAny(since)
		if err != nil {
			return fmt.Errorf("parsing --since %q: %w", since, err)
		}
		if header, ok := msg.MO.Header(); ok && header.TimeOfSession.Before(threshold) {
			return nil
		}
	}

	switch {
	case c.Bool("direction"):
		fmt.Println(msg.MessageType())
	case c.Bool("imei"):
		imei, ok := msg.IMEI()
		if !ok {
			return fmt.Errorf("message has no header, no IMEI available")
		}
		fmt.Println(colonHex(imei[:]))
	default:
		dump(msg)
	}

	return nil
}

func colonHex(b []byte) string {
	out := make([]byte, 0, len(b)*3)
	for i, v := range b {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out, "0123456789abcdef"[v>>4], "0123456789abcdef"[v&0x0f])
	}
	return string(out)
}

func dump(msg directip.Message) {
	fmt.Printf("direction: %s\n", msg.MessageType())

	switch msg.Direction {
	case directip.DirectionMT:
		dumpMT(msg.MT)
	case directip.DirectionMO:
		dumpMO(msg.MO)
	}
}

func dumpMT(msg mt.MTMessage) {
	if header, ok := msg.Header(); ok {
		fmt.Printf("header: client_msg_id=%d imei=%s disposition_flags=%+v\n",
			header.ClientMsgID, header.IMEI, header.DispositionFlags)
	}
	if payload, ok := msg.Payload(); ok {
		fmt.Printf("payload: %d bytes\n", len(payload.Payload))
	}
	if confirmation, ok := msg.Confirmation(); ok {
		fmt.Printf("confirmation: id_reference=%d status=%s\n",
			confirmation.IDReference, confirmation.MessageStatus)
	}
}

func dumpMO(msg mo.MOMessage) {
	if header, ok := msg.Header(); ok {
		fmt.Printf("header: cdr_uid=%d imei=%s session_status=%s momsn=%d mtmsn=%d time_of_session=%s\n",
			header.CDRUID, header.IMEI, header.SessionStatus, header.MOMSN, header.MTMSN,
			header.TimeOfSession.Format("2006-01-02T15:04:05Z"))
	}
	if payload, ok := msg.Payload(); ok {
		fmt.Printf("payload: %d bytes\n", len(payload.Payload))
	}
	if location, ok := msg.Location(); ok {
		fmt.Printf("location: lat=%.5f lon=%.5f cep_radius=%d\n",
			location.Coordinate.Latitude, location.Coordinate.Longitude, location.CEPRadius)
	}
}
