package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/narrative.dice/internal/platform/branding"
)

// rollView is the data behind a roll page.
type rollView struct {
	Copy     pageCopy
	Code     string
	PoolText string
	Seed     int64
	Faces    []faceView
	Result   string
	Success  bool
	Margin   int
}

type faceView struct {
	Die      string
	DieLabel string
	Index    int
	Face     string
}

type dieTableView struct {
	Die   string
	Label string
	Code  string
	Faces []faceView
}

// page wraps content in a minimal HTML document.
func page(lang, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s - %s</title></head><body><main>`,
			templ.EscapeString(lang), templ.EscapeString(title), templ.EscapeString(branding.AppName)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func rollPage(view rollView) templ.Component {
	return page(view.Copy.Locale, view.Copy.RollTitle, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		checkText := view.Copy.CheckFail
		if view.Success {
			checkText = view.Copy.CheckPass
		}
		if _, err := fmt.Fprintf(w, `<section id="roll" data-pool="%s" data-seed="%d"><h1>%s</h1><p class="pool">%s</p><ol class="faces">`,
			templ.EscapeString(view.Code), view.Seed,
			templ.EscapeString(view.Copy.RollTitle), templ.EscapeString(view.PoolText)); err != nil {
			return err
		}
		for _, face := range view.Faces {
			if _, err := fmt.Fprintf(w, `<li data-die="%s" data-index="%d">%s: %s</li>`,
				templ.EscapeString(face.Die), face.Index,
				templ.EscapeString(face.DieLabel), templ.EscapeString(face.Face)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</ol><p class="result">%s</p><p class="check" data-success="%t" data-margin="%d">%s</p><p class="seed">%s: %d</p></section>`,
			templ.EscapeString(view.Result), view.Success, view.Margin,
			templ.EscapeString(checkText), templ.EscapeString(view.Copy.Seed), view.Seed)
		return err
	}))
}

func facesPage(pc pageCopy, tables []dieTableView) templ.Component {
	return page(pc.Locale, pc.FacesTitle, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(pc.FacesTitle)); err != nil {
			return err
		}
		for _, table := range tables {
			if _, err := fmt.Fprintf(w, `<table id="die-%s" data-code="%s"><caption>%s</caption><tbody>`,
				templ.EscapeString(table.Die), templ.EscapeString(table.Code), templ.EscapeString(table.Label)); err != nil {
				return err
			}
			for _, face := range table.Faces {
				if _, err := fmt.Fprintf(w, `<tr><th>%s %d</th><td>%s</td></tr>`,
					templ.EscapeString(pc.FaceIndex), face.Index, templ.EscapeString(face.Face)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		return nil
	}))
}

func errorPage(pc pageCopy, message string) templ.Component {
	return page(pc.Locale, pc.ErrorTitle, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><p id="error">%s</p>`,
			templ.EscapeString(pc.ErrorTitle), templ.EscapeString(message))
		return err
	}))
}
