// seehuhn.de/go/softdraw - a software rasterizer for widget toolkits
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package softdraw

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	src := NewSurface(Sz(2, 2), LayoutARGB)
	dst := NewSurface(Sz(3, 3), LayoutARGB)
	if err := Copy(dst, nil, src, nil, false); err == nil {
		t.Fatal("copy between different sizes succeeded")
	}
	if !strings.Contains(buf.String(), "copy rejected") {
		t.Errorf("missing log record, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
