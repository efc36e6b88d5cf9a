package tabsplit

import (
	"html"
	"strings"
)

// RenderPage assembles a complete HTML document for page. Every page shares
// the same skeleton and differs only in metadata and body content.
func RenderPage(cfg *Config, page *Page) string {
	s := &page.Section

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("    <title>" + html.EscapeString(s.PageTitle(cfg.SiteName)) + "</title>\n")
	b.WriteString("    \n")
	b.WriteString("    <!-- SEO Meta Tags -->\n")
	writeMeta(&b, "description", s.Description())
	writeMeta(&b, "keywords", s.Keywords())
	writeMeta(&b, "author", cfg.Author)
	b.WriteString("    \n")
	if cfg.FontsURL != "" {
		b.WriteString("    <!-- Google Fonts -->\n")
		b.WriteString("    <link rel=\"preconnect\" href=\"https://fonts.googleapis.com\">\n")
		b.WriteString("    <link rel=\"preconnect\" href=\"https://fonts.gstatic.com\" crossorigin>\n")
		b.WriteString("    <link href=\"" + html.EscapeString(cfg.FontsURL) + "\" rel=\"stylesheet\">\n")
		b.WriteString("    \n")
	}
	b.WriteString("    <!-- Unified Responsive Framework -->\n")
	for _, href := range cfg.Stylesheets {
		b.WriteString("    <link rel=\"stylesheet\" href=\"" + html.EscapeString(cfg.PathPrefix+href) + "\">\n")
	}
	b.WriteString("    \n")
	b.WriteString(page.Styles)
	b.WriteString("\n</head>\n")
	b.WriteString("<body data-theme=\"" + html.EscapeString(cfg.Theme) + "\">\n")
	b.WriteString("    <!-- Page Load Spinner -->\n")
	b.WriteString("    <div class=\"page-spinner\">\n")
	b.WriteString("        <div class=\"page-spinner__content\">\n")
	b.WriteString("            <div class=\"page-spinner__logo\"></div>\n")
	b.WriteString("            <div class=\"page-spinner__spinner\"></div>\n")
	b.WriteString("        </div>\n")
	b.WriteString("    </div>\n\n")
	b.WriteString(page.Header)
	b.WriteString("\n\n")
	b.WriteString("    <main id=\"main-content\">\n")
	b.WriteString("        <div class=\"container py-8\">\n")
	b.WriteString(page.Content)
	b.WriteString("\n        </div>\n")
	b.WriteString("    </main>\n\n")
	b.WriteString(page.Footer)
	b.WriteString("\n\n")
	for _, src := range cfg.Scripts {
		b.WriteString("    <script src=\"" + html.EscapeString(cfg.PathPrefix+src) + "\"></script>\n")
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>")
	return b.String()
}

func writeMeta(b *strings.Builder, name, content string) {
	b.WriteString("    <meta name=\"" + name + "\" content=\"" + html.EscapeString(content) + "\">\n")
}
