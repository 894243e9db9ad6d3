//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2020-present Detlef Stern
//-----------------------------------------------------------------------------

package cmd

import (
	"fmt"
	"os"
	"runtime"
)

// Version describes the running program.
type Version struct {
	Prog      string // Name of the software
	Build     string // Representation of build process
	Hostname  string // Host name a reported by the kernel
	GoVersion string // Version of go
	Os        string // GOOS
	Arch      string // GOARCH
}

func newVersion(progName, buildVersion string) Version {
	v := Version{
		Prog:      progName,
		Build:     buildVersion,
		GoVersion: runtime.Version(),
		Os:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if v.Build == "" {
		v.Build = "unknown"
	}
	if hn, err := os.Hostname(); err == nil {
		v.Hostname = hn
	} else {
		v.Hostname = "*unknown host*"
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%v (%v/%v) running on %v (%v/%v)",
		v.Prog, v.Build, v.GoVersion, v.Hostname, v.Os, v.Arch)
}
