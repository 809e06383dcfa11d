package classlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteHTML copies the document from src to dst, merging classes into the
// class attribute of the first <html> element. Everything else is copied byte
// for byte. If the document has no <html> element it is copied unchanged and
// ErrNoRootElement is returned.
func RewriteHTML(dst io.Writer, src io.Reader, classes []string) error {
	z := html.NewTokenizer(src)
	rewritten := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return errors.Join(ErrRewrite, err)
			}
			break
		}

		if !rewritten && (tt == html.StartTagToken || tt == html.SelfClosingTagToken) {
			// Token lowercases names in place, so keep the source bytes first.
			raw := bytes.Clone(z.Raw())
			if tok := z.Token(); tok.DataAtom == atom.Html {
				if err := mergeClassAttr(&tok, classes); err != nil {
					return err
				}
				if _, err := io.WriteString(dst, tok.String()); err != nil {
					return errors.Join(ErrRewrite, err)
				}
				rewritten = true
				continue
			}
			if _, err := dst.Write(raw); err != nil {
				return errors.Join(ErrRewrite, err)
			}
			continue
		}

		if _, err := dst.Write(z.Raw()); err != nil {
			return errors.Join(ErrRewrite, err)
		}
	}

	if !rewritten {
		return ErrNoRootElement
	}
	return nil
}

func mergeClassAttr(tok *html.Token, classes []string) error {
	idx := -1
	for i, a := range tok.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "class") {
			idx = i
			break
		}
	}

	var existing string
	if idx >= 0 {
		existing = tok.Attr[idx].Val
	}

	set := NewSet(strings.Fields(existing)...)
	if err := set.Add(context.Background(), classes...); err != nil {
		return fmt.Errorf("merging classes into <html>: %w", err)
	}

	if idx >= 0 {
		tok.Attr[idx].Val = set.String()
	} else if set.Len() > 0 {
		tok.Attr = append(tok.Attr, html.Attribute{Key: "class", Val: set.String()})
	}
	return nil
}
