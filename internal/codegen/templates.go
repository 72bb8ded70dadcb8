package codegen

import (
	"strconv"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
}

// groupsTemplate renders the CategoryGroup constants and their lookup table.
// Entry types and methods live in the hand-written part of the package.
var groupsTemplate = template.Must(template.New("groups").Funcs(templateFuncs).Parse(
	`// Code generated by nzfcc generate from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// Category groups, in snapshot order.
const (
{{- range $i, $g := .Groups}}
	// {{$g.Const}} is the {{quote $g.Name}} group.
	{{$g.Const}}{{if eq $i 0}} CategoryGroup = iota + 1{{end}}
{{- end}}
)

var categoryGroupTable = [...]categoryGroupEntry{
{{- range .Groups}}
	{id: {{quote .ID}}, name: {{quote .Name}}, variant: {{quote .Ident}}},
{{- end}}
}
`))

// codesTemplate renders the NzfccCode constants and their lookup table.
var codesTemplate = template.Must(template.New("codes").Funcs(templateFuncs).Parse(
	`// Code generated by nzfcc generate from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// NZFCC category codes, in snapshot order.
const (
{{- range $i, $c := .Codes}}
	// {{$c.Const}} is the {{quote $c.Name}} category.
	{{$c.Const}}{{if eq $i 0}} NzfccCode = iota + 1{{end}}
{{- end}}
)

var nzfccCodeTable = [...]nzfccCodeEntry{
{{- range .Codes}}
	{id: {{quote .ID}}, name: {{quote .Name}}, variant: {{quote .Ident}}, group: {{.GroupConst}}},
{{- end}}
}
`))
