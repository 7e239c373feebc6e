// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build windows

package uuid

import "golang.org/x/sys/windows"

// Windows returns g as the value expected by Windows APIs.
func (g GUID) Windows() windows.GUID {
	return windows.GUID{
		Data1: g.Data1,
		Data2: g.Data2,
		Data3: g.Data3,
		Data4: g.Data4,
	}
}

// FromWindowsGUID returns the identifier held by a Windows GUID.
func FromWindowsGUID(w windows.GUID) UUID {
	return FromGUID(GUID{
		Data1: w.Data1,
		Data2: w.Data2,
		Data3: w.Data3,
		Data4: w.Data4,
	})
}
