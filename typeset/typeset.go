//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package typeset turns markup into images for the live preview.
package typeset

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-latex/latex/drawtex/drawimg"
	"github.com/go-latex/latex/mtex"
)

// ErrEmpty is returned when there is no markup to typeset.
var ErrEmpty = errors.New("nothing to typeset")

// A Typesetter renders markup to an image.
type Typesetter interface {
	Typeset(ctx context.Context, latex string) ([]byte, error)
}

// PNG typesets markup as a PNG image with the go-latex renderer.
type PNG struct {
	Size float64 // font size in points
	DPI  float64
}

func (p *PNG) Typeset(ctx context.Context, latex string) ([]byte, error) {
	if latex == "" {
		return nil, ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	dst := drawimg.NewRenderer(&b)
	if err := mtex.Render(dst, "$"+latex+"$", p.Size, p.DPI, nil); err != nil {
		return nil, fmt.Errorf("typeset %q: %w", latex, err)
	}
	// the renderer cannot be interrupted; drop results nobody wants
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
