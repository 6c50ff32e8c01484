package api

import (
	"html/template"
	"io/fs"
)

// LoadTemplates parses layouts, pages and partials from fsys. Each page
// defines a template named after its file that pulls in the shared
// header and footer.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		// safeHTML marks catalogue-authored markup as trusted
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		"layouts/*.html",
		"pages/*.html",
		"partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := fs.Glob(fsys, p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseFS(fsys, p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
