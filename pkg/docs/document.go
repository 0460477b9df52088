// Package docs est le moteur documentaire : un modèle d'éléments (paragraphes,
// tableaux, listes, images), la substitution de champs {{clé}}, la mise en
// forme des paragraphes et un magasin de documents sur fichiers.
package docs

import "strings"

// Kind type d'élément de corps de document
type Kind string

const (
	KindParagraph   Kind = "paragraph"
	KindTable       Kind = "table"
	KindListItem    Kind = "listItem"
	KindInlineImage Kind = "inlineImage"
	KindPageBreak   Kind = "pageBreak"
)

// Alignements horizontaux
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Style mise en forme d'un paragraphe
type Style struct {
	FontFamily   string  `json:"fontFamily,omitempty"`
	FontSize     int     `json:"fontSize,omitempty"`
	Alignment    string  `json:"alignment,omitempty"`
	SpacingAfter float64 `json:"spacingAfter,omitempty"`
}

// Element un élément du corps d'un document
type Element struct {
	Kind  Kind       `json:"kind"`
	Text  string     `json:"text,omitempty"`
	Style *Style     `json:"style,omitempty"`
	Cells [][]string `json:"cells,omitempty"`
	Image string     `json:"image,omitempty"`
}

// Copy retourne une copie profonde de l'élément
func (e *Element) Copy() *Element {
	c := &Element{Kind: e.Kind, Text: e.Text, Image: e.Image}
	if e.Style != nil {
		st := *e.Style
		c.Style = &st
	}
	if e.Cells != nil {
		c.Cells = make([][]string, len(e.Cells))
		for i, row := range e.Cells {
			c.Cells[i] = append([]string(nil), row...)
		}
	}
	return c
}

// SetFontFamily fixe la police (chaînable)
func (e *Element) SetFontFamily(family string) *Element {
	e.ensureStyle().FontFamily = family
	return e
}

// SetFontSize fixe la taille de police (chaînable)
func (e *Element) SetFontSize(size int) *Element {
	e.ensureStyle().FontSize = size
	return e
}

// SetAlignment fixe l'alignement horizontal (chaînable)
func (e *Element) SetAlignment(alignment string) *Element {
	e.ensureStyle().Alignment = alignment
	return e
}

// SetSpacingAfter fixe l'espacement après le paragraphe (chaînable)
func (e *Element) SetSpacingAfter(spacing float64) *Element {
	e.ensureStyle().SpacingAfter = spacing
	return e
}

func (e *Element) ensureStyle() *Style {
	if e.Style == nil {
		e.Style = &Style{}
	}
	return e.Style
}

// Document un document : un nom d'affichage et un corps ordonné d'éléments
type Document struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Body []*Element `json:"body"`
}

// ReplaceText remplace toutes les occurrences de old par new dans tout le
// corps (texte des paragraphes et listes, cellules de tableaux)
func (d *Document) ReplaceText(old, new string) {
	for _, el := range d.Body {
		switch el.Kind {
		case KindParagraph, KindListItem:
			el.Text = strings.ReplaceAll(el.Text, old, new)
		case KindTable:
			for _, row := range el.Cells {
				for i := range row {
					row[i] = strings.ReplaceAll(row[i], old, new)
				}
			}
		}
	}
}

// Paragraphs retourne tous les paragraphes du corps, dans l'ordre
func (d *Document) Paragraphs() []*Element {
	var out []*Element
	for _, el := range d.Body {
		if el.Kind == KindParagraph {
			out = append(out, el)
		}
	}
	return out
}

// ContainsText vrai si le texte apparaît quelque part dans le corps
func (d *Document) ContainsText(text string) bool {
	for _, el := range d.Body {
		if strings.Contains(el.Text, text) {
			return true
		}
		for _, row := range el.Cells {
			for _, cell := range row {
				if strings.Contains(cell, text) {
					return true
				}
			}
		}
	}
	return false
}

// ── Ajouts d'éléments (copies, comme l'API d'assemblage l'exige) ──

// AppendParagraph ajoute une copie du paragraphe au corps
func (d *Document) AppendParagraph(e *Element) { d.Body = append(d.Body, e.Copy()) }

// AppendTable ajoute une copie du tableau au corps
func (d *Document) AppendTable(e *Element) { d.Body = append(d.Body, e.Copy()) }

// AppendListItem ajoute une copie de l'élément de liste au corps
func (d *Document) AppendListItem(e *Element) { d.Body = append(d.Body, e.Copy()) }

// AppendImage ajoute une copie de l'image au corps
func (d *Document) AppendImage(e *Element) { d.Body = append(d.Body, e.Copy()) }

// AppendPageBreak ajoute un saut de page au corps
func (d *Document) AppendPageBreak() {
	d.Body = append(d.Body, &Element{Kind: KindPageBreak})
}
