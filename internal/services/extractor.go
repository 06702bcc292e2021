package services

import (
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractorService turns a stored PDF or DOCX upload into plain text.
// Extraction is best-effort: decode failures are logged and swallowed, and
// the caller always gets a string back. An empty string is a valid result
// that the field extractor handles with defaults.
type TextExtractorService interface {
	ExtractText(filePath string) string
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText implements TextExtractorService. The file kind comes from the
// stored extension; anything other than .pdf/.docx has been rejected before
// reaching this point.
func (s *textExtractorService) ExtractText(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return s.extractPDFText(filePath)
	case ".docx":
		return s.extractDocxText(filePath)
	default:
		return ""
	}
}

func (s *textExtractorService) extractPDFText(filePath string) string {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("⚠️  PDF extraction failed for %s: %v\n", filePath, err)
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Skipping page %d of %s: %v\n", pageIndex, filePath, err)
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String()
}

func (s *textExtractorService) extractDocxText(filePath string) string {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		log.Printf("⚠️  DOCX extraction failed for %s: %v\n", filePath, err)
		return ""
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent())
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// docxContentToText flattens the word-processing XML of a DOCX body into
// plain text, one line per paragraph in document order.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return xmlEntityReplacer.Replace(content)
}
