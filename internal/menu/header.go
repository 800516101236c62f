package menu

import (
	"fmt"
	"strings"

	"github.com/jask/blanktech/internal/box"
	"github.com/jask/blanktech/internal/console"
	"github.com/jask/blanktech/internal/feature"
	"github.com/jask/blanktech/internal/theme"
)

const banner = `
██████╗ ██╗      █████╗ ███╗   ██╗██╗  ██╗████████╗███████╗ ██████╗██╗  ██╗
██╔══██╗██║     ██╔══██╗████╗  ██║██║ ██╔╝╚══██╔══╝██╔════╝██╔════╝██║ ██╔╝
██████╔╝██║     ███████║██╔██╗ ██║█████╔╝    ██║   █████╗  ██║     █████╔╝
██╔══██╗██║     ██╔══██║██║╚██╗██║██╔═██╗    ██║   ██╔══╝  ██║     ██╔═██╗
██████╔╝███████╗██║  ██║██║ ╚████║██║  ██╗   ██║   ███████╗╚██████╗██║  ██╗
╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝   ╚══════╝ ╚═════╝╚═╝  ╚═╝
`

const (
	notice = "(DEMO / EDUCATIONAL: Dont use the operations to harm anyone!)"
	title  = "BlankTech - RedBox Edition"
)

// Header is the banner and two-column option box shown above every screen.
type Header struct {
	width  int
	column int
	ids    []feature.ID
}

// NewHeader lays out ids in two columns, first half on the left.
func NewHeader(width, column int, ids []feature.ID) *Header {
	return &Header{width: width, column: column, ids: ids}
}

// Box renders the option box.
func (h *Header) Box() *box.Frame {
	f := box.New(h.width, h.column).Top(title).Blank()
	half := (len(h.ids) + 1) / 2
	for i := 0; i < half; i++ {
		left := optionLabel(h.ids[i])
		right := ""
		if i+half < len(h.ids) {
			right = optionLabel(h.ids[i+half])
		}
		f.Row(left, right)
	}
	return f.Blank().Bottom()
}

func optionLabel(id feature.ID) string {
	return fmt.Sprintf("[%s] %s", id.Key(), id.Label())
}

// Draw implements feature.Header.
func (h *Header) Draw(c *console.Console) {
	c.Println(theme.Frame, strings.TrimSuffix(banner, "\n"))
	c.Println(theme.Notice, box.Center(notice, box.New(h.width, h.column).Width()))
	c.Blank()
	c.Lines(theme.Frame, h.Box().Lines())
	c.Blank()
}
