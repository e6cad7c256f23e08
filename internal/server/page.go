// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import "html/template"

var (
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	sceneTmpl = template.Must(template.New("scene").Parse(sceneHTML))
)

const indexHTML = `<!DOCTYPE html>
<html>
  <head><title>Exoplanets</title></head>
  <body>
    <h1>Exoplanets</h1>
    <ol>
      {{range .}}<li><a href="/scenes/{{.Number}}">{{.Title}}</a></li>
      {{end}}
    </ol>
  </body>
</html>
`

const sceneHTML = `<!DOCTYPE html>
<html>
  <head>
    <title>{{.Title}}</title>
    <style>
      body { background: #0a192f; color: #ccd6f6; font-family: Roboto, Helvetica, Arial, sans-serif; }
      a { color: #64ffda; }
      fieldset { border: 1px solid #233554; display: inline-block; vertical-align: top; }
      .region { margin: 0.5em 0; }
    </style>
  </head>
  <body>
    <nav>
      <a href="/scenes/{{.Prev}}">&larr; previous</a>
      | scene {{.Number}} of {{.Count}} |
      <a href="/scenes/{{.Next}}">next &rarr;</a>
    </nav>
    <h1>{{.Title}}</h1>
    {{if or .Groups .Sliders}}
    <form method="get" action="/scenes/{{.Number}}">
      <input type="hidden" name="apply" value="1">
      {{range .Groups}}
      <fieldset>
        <legend>{{.Name}}</legend>
        {{$g := .}}{{range .Options}}
        <label><input type="checkbox" name="{{$g.Name}}" value="{{.}}" onchange="this.form.submit()"{{if $g.IsChecked .}} checked{{end}}> {{.}}</label><br>
        {{end}}
      </fieldset>
      {{end}}
      {{range .Sliders}}
      <label>{{.Name}}
        <input type="range" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" value="{{.Value}}" onchange="this.form.submit()">
      </label>
      {{end}}
      <noscript><button type="submit">Apply</button></noscript>
    </form>
    {{end}}
    {{range .Regions}}
    <div class="region" id="{{.Name}}">{{.Name}}: {{.Text}}</div>
    {{end}}
    <div class="chart">{{.Chart}}</div>
  </body>
</html>
`
