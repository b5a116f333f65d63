// This file is part of edakit.
//
// edakit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edakit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with edakit.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/edakit/edakit/logger"
)

// Address of the statistics server.
const Address = "localhost:12700"

const path = "/debug/statsview"

// Launch the statistics server for a session that has finished loading. The
// layout of mem is reported to output and to the log so that the runtime
// graphs can be read against it. The server runs until the program exits.
//
// mem is not read again after Launch() returns.
func Launch(output io.Writer, mem Memory) {
	summary := Summarise(mem)
	logger.Logf(logger.Allow, "statsview", "serving on %s%s for %s", Address, path, summary)

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	io.WriteString(output, fmt.Sprintf("stats server available at %s%s\n", Address, path))
	io.WriteString(output, fmt.Sprintf("memory: %s\n", summary))
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return true
}
