package pptx

import (
	"bytes"
	"encoding/xml"
	"text/template"
)

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	relBase       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relPkgCore    = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	xmlHeader     = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	notesSizeCX   = 6858000
	notesSizeCY   = 9144000
	firstSlideID  = 256
	masterID      = 2147483648
	firstSlideRel = 100
)

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

var funcs = template.FuncMap{
	"x":   escape,
	"nsA": func() string { return nsA },
	"nsR": func() string { return nsR },
	"nsP": func() string { return nsP },
	"grp": func() string { return grpSpPr },
}

var templates = template.Must(template.New("pptx").Funcs(funcs).Parse(`
{{define "xfrm"}}<a:xfrm><a:off x="{{.X}}" y="{{.Y}}"/><a:ext cx="{{.W}}" cy="{{.H}}"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom>{{end}}

{{define "fill"}}{{if .Fill}}<a:solidFill><a:srgbClr val="{{.Fill}}">{{if .Alpha}}<a:alpha val="{{.Alpha}}"/>{{end}}</a:srgbClr></a:solidFill>{{else}}<a:noFill/>{{end}}{{end}}

{{define "rect"}}<p:sp><p:nvSpPr><p:cNvPr id="{{.ID}}" name="Rectangle {{.ID}}"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>{{template "xfrm" .}}{{template "fill" .}}<a:ln><a:noFill/></a:ln></p:spPr></p:sp>{{end}}

{{define "text"}}<p:sp><p:nvSpPr><p:cNvPr id="{{.ID}}" name="TextBox {{.ID}}"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>{{template "xfrm" .}}{{template "fill" .}}</p:spPr><p:txBody><a:bodyPr wrap="square" lIns="91440" tIns="45720" rIns="91440" bIns="45720" anchor="{{.Anchor}}" rtlCol="0">{{if .Shrink}}<a:normAutofit/>{{else}}<a:noAutofit/>{{end}}</a:bodyPr><a:lstStyle/>{{range .Paras}}<a:p><a:pPr algn="{{.Align}}"/>{{range .Runs}}<a:r><a:rPr lang="en-US" sz="{{.Size}}"{{if .Bold}} b="1"{{end}} dirty="0"><a:solidFill><a:srgbClr val="{{.Color}}"/></a:solidFill><a:latin typeface="{{x .Font}}"/><a:cs typeface="{{x .Font}}"/></a:rPr><a:t>{{x .Text}}</a:t></a:r>{{end}}</a:p>{{else}}<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>{{end}}</p:txBody></p:sp>{{end}}

{{define "pic"}}<p:pic><p:nvPicPr><p:cNvPr id="{{.ID}}" name="Picture {{.ID}}" descr="{{x .Descr}}"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="{{.RelID}}"/><a:stretch><a:fillRect/></a:stretch></p:blipFill><p:spPr>{{template "xfrm" .}}</p:spPr></p:pic>{{end}}

{{define "slide"}}<p:sld xmlns:a="{{nsA}}" xmlns:r="{{nsR}}" xmlns:p="{{nsP}}"><p:cSld><p:spTree>{{grp}}{{range .Shapes}}{{if eq .Kind "rect"}}{{template "rect" .}}{{else if eq .Kind "text"}}{{template "text" .}}{{else}}{{template "pic" .}}{{end}}{{end}}</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>{{end}}

{{define "notes"}}<p:notes xmlns:a="{{nsA}}" xmlns:r="{{nsR}}" xmlns:p="{{nsP}}"><p:cSld><p:spTree>{{grp}}<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image Placeholder 1"/><p:cNvSpPr><a:spLocks noGrp="1" noRot="1" noChangeAspect="1"/></p:cNvSpPr><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp><p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes Placeholder 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>{{range .}}<a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>{{x .}}</a:t></a:r></a:p>{{end}}</p:txBody></p:sp></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>{{end}}

{{define "rels"}}<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">{{range .}}<Relationship Id="{{.ID}}" Type="{{.Type}}" Target="{{x .Target}}"/>{{end}}</Relationships>{{end}}

{{define "contentTypes"}}<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/>{{range .Defaults}}<Default Extension="{{.Ext}}" ContentType="{{.Type}}"/>{{end}}{{range .Overrides}}<Override PartName="{{.Part}}" ContentType="{{.Type}}"/>{{end}}</Types>{{end}}

{{define "presentation"}}<p:presentation xmlns:a="{{nsA}}" xmlns:r="{{nsR}}" xmlns:p="{{nsP}}" saveSubsetFonts="1"><p:sldMasterIdLst><p:sldMasterId id="{{.MasterID}}" r:id="rId1"/></p:sldMasterIdLst>{{if .HasNotes}}<p:notesMasterIdLst><p:notesMasterId r:id="rId3"/></p:notesMasterIdLst>{{end}}{{if .Slides}}<p:sldIdLst>{{range .Slides}}<p:sldId id="{{.ID}}" r:id="{{.RelID}}"/>{{end}}</p:sldIdLst>{{end}}<p:sldSz cx="{{.Width}}" cy="{{.Height}}"/><p:notesSz cx="{{.NotesWidth}}" cy="{{.NotesHeight}}"/><p:defaultTextStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:defaultTextStyle></p:presentation>{{end}}

{{define "core"}}<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><dc:title>{{x .Title}}</dc:title>{{if .Author}}<dc:creator>{{x .Author}}</dc:creator><cp:lastModifiedBy>{{x .Author}}</cp:lastModifiedBy>{{end}}{{if .Created}}<dcterms:created xsi:type="dcterms:W3CDTF">{{.Created}}</dcterms:created><dcterms:modified xsi:type="dcterms:W3CDTF">{{.Created}}</dcterms:modified>{{end}}</cp:coreProperties>{{end}}

{{define "app"}}<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"><Application>{{x .Application}}</Application><PresentationFormat>On-screen Show (4:3)</PresentationFormat><Slides>{{.Slides}}</Slides><Notes>{{.Notes}}</Notes></Properties>{{end}}

{{define "theme"}}<a:theme xmlns:a="{{nsA}}" name="Deck"><a:themeElements><a:clrScheme name="Deck"><a:dk1><a:srgbClr val="000000"/></a:dk1><a:lt1><a:srgbClr val="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="1F2937"/></a:dk2><a:lt2><a:srgbClr val="E5E7EB"/></a:lt2><a:accent1><a:srgbClr val="{{.Accent}}"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme><a:fontScheme name="Deck"><a:majorFont><a:latin typeface="{{x .HeadingFont}}"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="{{x .BodyFont}}"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Deck"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>{{end}}
`))

// render executes a named template with the XML declaration prepended.
func render(name string, data any) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
