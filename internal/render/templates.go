package render

// The built-in visual surfaces. All three follow the same contract: one root
// element carrying the resume-section class, styled exclusively through the
// utility classes the export normalizer resolves to inline CSS.

const classicTemplate = `<div class="resume-section bg-white">
  <header class="border-b border-gray-400">
    <h1 class="font-bold uppercase text-gray-900">{{.FullName}}</h1>
    {{if filled .Designation}}<p class="font-medium text-gray-700">{{.Designation}}</p>{{end}}
    <p class="text-gray-600">
      {{if filled .Email}}<span>{{.Email}}</span>{{end}}
      {{if filled .Phone}}<span>{{.Phone}}</span>{{end}}
      {{if filled .Address}}<span>{{.Address}}</span>{{end}}
    </p>
    <p class="text-blue-600 underline">
      {{if filled .LinkedIn}}<a href="{{.LinkedIn}}">{{.LinkedIn}}</a>{{end}}
      {{if filled .GitHub}}<a href="{{.GitHub}}">{{.GitHub}}</a>{{end}}
      {{if filled .Portfolio}}<a href="{{.Portfolio}}">{{.Portfolio}}</a>{{end}}
    </p>
  </header>
  {{if filled .Summary}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Summary</h2>
    <p class="text-gray-700">{{.Summary}}</p>
  </section>
  {{end}}
  {{if .Experience}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Experience</h2>
    {{range .Experience}}
    <article>
      <h3 class="font-semibold text-gray-900">{{.Role}}</h3>
      <p class="font-medium text-gray-700">{{.Company}}{{if filled .Location}} &middot; {{.Location}}{{end}}</p>
      <p class="italic text-gray-600">{{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}}</p>
      <p class="text-gray-700">{{.Description}}</p>
    </article>
    {{end}}
  </section>
  {{end}}
  {{if .Education}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Education</h2>
    {{range .Education}}
    <article>
      <h3 class="font-semibold text-gray-900">{{.Degree}}</h3>
      <p class="text-gray-700">{{.Institute}}</p>
      <p class="italic text-gray-600">{{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}}</p>
    </article>
    {{end}}
  </section>
  {{end}}
  {{if .Projects}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Projects</h2>
    {{range .Projects}}
    <article>
      <h3 class="font-semibold text-gray-900">{{.Title}}</h3>
      <p class="text-gray-700">{{.Description}}</p>
      {{if filled .GitHub}}<a class="text-blue-600 underline truncate" href="{{.GitHub}}">{{.GitHub}}</a>{{end}}
      {{if filled .Live}}<a class="text-blue-600 underline truncate" href="{{.Live}}">{{.Live}}</a>{{end}}
    </article>
    {{end}}
  </section>
  {{end}}
  {{if .Certifications}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Certifications</h2>
    <ul class="list-disc list-inside text-gray-700">
      {{range .Certifications}}
      <li>{{.Title}}{{if filled .Year}} ({{.Year}}){{end}}{{if filled .Link}} &mdash; <a class="text-blue-600 underline" href="{{.Link}}">{{.Link}}</a>{{end}}</li>
      {{end}}
    </ul>
  </section>
  {{end}}
  {{if .Skills}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Skills</h2>
    <p class="text-gray-700">{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
  </section>
  {{end}}
  {{if or .Languages .Interests}}
  <section>
    <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Additional</h2>
    {{if .Languages}}<p class="text-gray-700"><span class="font-medium">Languages:</span> {{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>{{end}}
    {{if .Interests}}<p class="text-gray-700"><span class="font-medium">Interests:</span> {{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>{{end}}
  </section>
  {{end}}
</div>
`

const modernTemplate = `<div class="resume-section bg-white">
  <header class="bg-gray-100">
    <h1 class="font-bold text-gray-900">{{.FullName}}</h1>
    {{if filled .Designation}}<p class="font-semibold text-blue-600 uppercase">{{.Designation}}</p>{{end}}
    <p class="text-gray-600">
      {{if filled .Email}}<span>{{.Email}}</span>{{end}}
      {{if filled .Phone}}<span>{{.Phone}}</span>{{end}}
      {{if filled .LinkedIn}}<a class="text-blue-600" href="{{.LinkedIn}}">{{.LinkedIn}}</a>{{end}}
      {{if filled .GitHub}}<a class="text-blue-600" href="{{.GitHub}}">{{.GitHub}}</a>{{end}}
    </p>
  </header>
  {{if filled .Summary}}<p class="italic text-gray-700">{{.Summary}}</p>{{end}}
  {{if .Experience}}
  <section>
    <h2 class="font-bold text-gray-800">Experience</h2>
    {{range .Experience}}
    <article class="border-b border-gray-300">
      <h3 class="font-semibold text-gray-900">{{.Role}} <span class="font-medium text-gray-600">@ {{.Company}}</span></h3>
      <p class="text-gray-600">{{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}}{{if filled .Location}} &middot; {{.Location}}{{end}}</p>
      <p class="text-gray-700">{{.Description}}</p>
    </article>
    {{end}}
  </section>
  {{end}}
  {{if .Projects}}
  <section>
    <h2 class="font-bold text-gray-800">Projects</h2>
    {{range .Projects}}
    <article>
      <h3 class="font-semibold text-gray-900">{{.Title}}</h3>
      <p class="text-gray-700">{{.Description}}</p>
      {{if filled .Live}}<a class="text-blue-600 underline truncate" href="{{.Live}}">{{.Live}}</a>{{end}}
    </article>
    {{end}}
  </section>
  {{end}}
  {{if .Education}}
  <section>
    <h2 class="font-bold text-gray-800">Education</h2>
    <ul class="list-disc list-inside text-gray-700">
      {{range .Education}}<li>{{.Degree}}, {{.Institute}} ({{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}})</li>{{end}}
    </ul>
  </section>
  {{end}}
  {{if .Certifications}}
  <section>
    <h2 class="font-bold text-gray-800">Certifications</h2>
    <ul class="list-disc list-inside text-gray-700">
      {{range .Certifications}}<li>{{.Title}}{{if filled .Year}} ({{.Year}}){{end}}</li>{{end}}
    </ul>
  </section>
  {{end}}
  {{if .Skills}}
  <section>
    <h2 class="font-bold text-gray-800">Skills</h2>
    <p class="text-gray-700">{{range $i, $s := .Skills}}{{if $i}} &middot; {{end}}{{$s}}{{end}}</p>
  </section>
  {{end}}
</div>
`

// splitTemplate uses a 12-column grid with a 5/7 split. The export normalizer
// rewrites this into a fixed 40%/60% flex row because the rasterizer's grid
// support is unreliable.
const splitTemplate = `<div class="resume-section bg-white">
  <div class="grid-cols-12">
    <aside class="col-span-5 bg-gray-100 border-r">
      <h1 class="font-bold text-gray-900">{{.FullName}}</h1>
      {{if filled .Designation}}<p class="font-medium uppercase text-gray-700">{{.Designation}}</p>{{end}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-400">Contact</h2>
        {{if filled .Email}}<p class="text-gray-700 truncate">{{.Email}}</p>{{end}}
        {{if filled .Phone}}<p class="text-gray-700">{{.Phone}}</p>{{end}}
        {{if filled .Address}}<p class="text-gray-700">{{.Address}}</p>{{end}}
        {{if filled .LinkedIn}}<a class="text-blue-600 truncate" href="{{.LinkedIn}}">{{.LinkedIn}}</a>{{end}}
        {{if filled .GitHub}}<a class="text-blue-600 truncate" href="{{.GitHub}}">{{.GitHub}}</a>{{end}}
        {{if filled .Portfolio}}<a class="text-blue-600 truncate" href="{{.Portfolio}}">{{.Portfolio}}</a>{{end}}
      </section>
      {{if .Skills}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-400">Skills</h2>
        <ul class="list-disc list-inside text-gray-700">
          {{range .Skills}}<li>{{.}}</li>{{end}}
        </ul>
      </section>
      {{end}}
      {{if .Languages}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-400">Languages</h2>
        <p class="text-gray-700">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
      </section>
      {{end}}
      {{if .Interests}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-400">Interests</h2>
        <p class="text-gray-700">{{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
      </section>
      {{end}}
    </aside>
    <main class="col-span-7">
      {{if filled .Summary}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Profile</h2>
        <p class="text-gray-700">{{.Summary}}</p>
      </section>
      {{end}}
      {{if .Experience}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Experience</h2>
        {{range .Experience}}
        <article>
          <h3 class="font-semibold text-gray-900">{{.Role}}</h3>
          <p class="font-medium text-gray-700">{{.Company}}</p>
          <p class="italic text-gray-600">{{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}}</p>
          <p class="text-gray-700">{{.Description}}</p>
        </article>
        {{end}}
      </section>
      {{end}}
      {{if .Education}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Education</h2>
        {{range .Education}}
        <article>
          <h3 class="font-semibold text-gray-900">{{.Degree}}</h3>
          <p class="text-gray-700">{{.Institute}} &middot; {{yearMonth .StartDate}} &ndash; {{yearMonth .EndDate}}</p>
        </article>
        {{end}}
      </section>
      {{end}}
      {{if .Projects}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Projects</h2>
        {{range .Projects}}
        <article>
          <h3 class="font-semibold text-gray-900">{{.Title}}</h3>
          <p class="text-gray-700">{{.Description}}</p>
          {{if filled .GitHub}}<a class="text-blue-600 underline truncate" href="{{.GitHub}}">{{.GitHub}}</a>{{end}}
        </article>
        {{end}}
      </section>
      {{end}}
      {{if .Certifications}}
      <section>
        <h2 class="font-semibold uppercase text-gray-800 border-b border-gray-300">Certifications</h2>
        <ul class="list-disc list-inside text-gray-700">
          {{range .Certifications}}<li>{{.Title}}{{if filled .Year}} ({{.Year}}){{end}}</li>{{end}}
        </ul>
      </section>
      {{end}}
    </main>
  </div>
</div>
`
