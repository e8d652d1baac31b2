package pipeline

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Times New Roman"
	docxFontSize = 13
	docxHeadSize = 15
)

// ExportDocx writes the result as a styled document with the same three
// sections as the text export.
func (o *implOrchestrator) ExportDocx(res Result, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "Headline", true, docxHeadSize)
	addRun(doc.AddParagraph(""), res.Headline, false, docxFontSize)
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "Summary", true, docxHeadSize)
	for _, line := range strings.Split(res.Summary, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			addRun(doc.AddParagraph(""), trimmed, false, docxFontSize)
		}
	}
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "Keywords", true, docxHeadSize)
	addRun(doc.AddParagraph(""), strings.Join(res.Keywords, ", "), false, docxFontSize)

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
