// Package report renders the weekly workout page: current training max,
// the main set/rep/weight table, the plate-loading reference and the
// accessory exercises.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/mkovacev/liftcycle/internal/accessory"
	"github.com/mkovacev/liftcycle/internal/plan"
	"github.com/mkovacev/liftcycle/internal/progression"
)

type Data struct {
	UserName    string
	Week        int
	WeekStart   time.Time
	WeekEnd     time.Time
	TrainingMax progression.Weights
	Sets        []plan.Set
	Reference   []plan.ReferenceRow
	Accessories []accessory.Exercise
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("workout").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
	}).Parse(workoutPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse workout template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render workout page: %w", err)
	}
	return buf.Bytes(), nil
}

const workoutPageTemplate = `<!doctype html>
<html>
  <style>
  th {background-color: #3498db;}
  </style>
  <head>
  <title> 5-3-1 Workout of the Week </title>
  <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.min.css">
  </head>
  <body style="float: left; margin-left: 15px;">
  <h2>5-3-1 Workout of the Week</h2>
    <p>{{.UserName}} - the workout of the week. It is currently <b>Week {{.Week}}</b> <br>
       <b>Week {{.Week}}</b> goes from {{date .WeekStart}} till {{date .WeekEnd}}
    </p>
    <h4>Training Max:</h4>
    <table class="table-bordered table-striped table-condensed text-center">
      <thead>
        <tr><th>deadlift</th><th>squat</th><th>bench</th><th>ohp</th></tr>
      </thead>
      <tbody>
        <tr>
          <td>{{.TrainingMax.Deadlift}}</td>
          <td>{{.TrainingMax.Squat}}</td>
          <td>{{.TrainingMax.Bench}}</td>
          <td>{{.TrainingMax.OverheadPress}}</td>
        </tr>
      </tbody>
    </table>
    <h4>Main Workout:</h4>
    <table class="table-bordered table-striped table-hover table-condensed text-center">
      <thead>
        <tr><th>week</th><th>set</th><th>reps</th><th>deadlift</th><th>squat</th><th>bench</th><th>ohp</th></tr>
      </thead>
      <tbody>
        {{range .Sets}}<tr>
          <td>{{.Week}}</td><td>{{.Num}}</td><td>{{.Reps}}</td>
          <td>{{.Deadlift}}</td><td>{{.Squat}}</td><td>{{.Bench}}</td><td>{{.OverheadPress}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <br>
    <h4>Weight References:</h4>
    <table class="table-bordered table-striped table-hover table-condensed text-center">
      <thead>
        <tr><th>exercise</th><th>set</th><th>reps</th><th>weight</th><th>no bar</th><th>each side</th></tr>
      </thead>
      <tbody>
        {{range .Reference}}<tr>
          <td>{{.Exercise}}</td><td>{{.Set}}</td><td>{{.Reps}}</td>
          <td>{{.Weight}}</td><td>{{.WeightNoBar}}</td><td>{{.WeightEachSide}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <br>
    <h4>Accessory Exercises:</h4>
    <table class="table-bordered table-striped table-hover table-condensed text-center">
      <thead>
        <tr><th>main lift</th><th>exercise</th><th>weight</th><th>sets</th><th>reps</th></tr>
      </thead>
      <tbody>
        {{range .Accessories}}<tr>
          <td>{{.MainLift}}</td><td>{{.Name}}</td><td>{{.Weight}}</td><td>{{.Sets}}</td><td>{{.Reps}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <br>
  </body>
</html>
`
