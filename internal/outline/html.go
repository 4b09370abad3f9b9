// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/xmind2md/pkg/types"
)

// HTML renders o as an HTML fragment by converting its Markdown form with
// goldmark. Raw HTML inside titles or notes is omitted by goldmark.
func HTML(o Outline, labels types.Labels) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(o, labels)), &buf); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}
