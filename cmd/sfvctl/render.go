package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/sfv/sfv"
)

// renderItem, renderList and renderDictionary print a parsed tree in a
// readable form, the way the teacher's core/planfmt/formatter package
// renders a Plan for --dry-run output — here there is no execution tree to
// walk, just items, inner lists, and parameters, so one small recursive
// printer covers all three field kinds.

func renderItem(w io.Writer, item sfv.Item, indent string) {
	fmt.Fprintf(w, "%s%s%s\n", indent, item.Value, renderParams(item.Params))
}

func renderEntry(w io.Writer, v sfv.ItemOrInnerList, indent string) {
	if !v.IsInnerList {
		renderItem(w, v.Item, indent)
		return
	}
	il := v.InnerList
	fmt.Fprintf(w, "%sInnerList%s\n", indent, renderParams(il.Params))
	for _, item := range il.Items {
		renderItem(w, item, indent+"  ")
	}
}

func renderParams(params *sfv.Parameters) string {
	if params.Len() == 0 {
		return ""
	}
	var parts []string
	params.Range(func(k sfv.Key, v sfv.BareItem) bool {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		return true
	})
	return " {" + strings.Join(parts, ", ") + "}"
}

func renderList(w io.Writer, list sfv.List) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(empty list)")
		return
	}
	for _, v := range list {
		renderEntry(w, v, "")
	}
}

func renderDictionary(w io.Writer, dict *sfv.Dictionary) {
	if dict.Len() == 0 {
		fmt.Fprintln(w, "(empty dictionary)")
		return
	}
	dict.Range(func(k sfv.Key, v sfv.ItemOrInnerList) bool {
		fmt.Fprintf(w, "%s:\n", k)
		renderEntry(w, v, "  ")
		return true
	})
}
