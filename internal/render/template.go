package render

import "html/template"

var pageTmpl = template.Must(template.New("deals").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Site.Title}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    :root {
      --bg: #f7f7fa;
      --card-bg: #ffffff;
      --border: #e1e1ea;
      --text-main: #222222;
      --text-muted: #666666;
      --accent: #36a852;
      --danger: #c62828;
      --yellow: #f4c542;
      --orange: #f28c28;
      --lowgray: #bbbbbb;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 0;
      font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      background: var(--bg);
      color: var(--text-main);
    }
    header {
      background: #ffffff;
      border-bottom: 1px solid var(--border);
      padding: 16px 20px;
      position: sticky;
      top: 0;
      z-index: 10;
    }
    .header-inner {
      max-width: 1100px;
      margin: 0 auto;
      display: flex;
      flex-direction: column;
      gap: 4px;
    }
    .header-inner h1 { font-size: 1.25rem; margin: 0; }
    .subtitle { font-size: 0.85rem; color: var(--text-muted); }
    main { max-width: 1100px; margin: 0 auto; padding: 16px 12px 40px; }
    .updated { font-size: 0.8rem; color: var(--text-muted); margin-bottom: 12px; }
    .filters {
      display: flex;
      flex-wrap: wrap;
      gap: 8px;
      margin-bottom: 16px;
      font-size: 0.85rem;
    }
    .filter-pill {
      padding: 6px 10px;
      border-radius: 999px;
      border: 1px solid var(--border);
      background: #ffffff;
      color: var(--text-muted);
    }
    .grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
      gap: 16px;
    }
    .deal-card {
      position: relative;
      background: var(--card-bg);
      border-radius: 12px;
      border: 1px solid var(--border);
      padding: 10px 10px 12px;
      display: flex;
      flex-direction: column;
      gap: 8px;
      box-shadow: 0 2px 6px rgba(0,0,0,0.03);
    }
    .badge {
      position: absolute;
      top: 10px;
      right: 10px;
      padding: 4px 10px;
      border-radius: 999px;
      font-size: 0.7rem;
      font-weight: 600;
      border: 2px solid transparent;
      background: #ffffffee;
    }
    .badge-elite { border-color: var(--orange); color: var(--orange); }
    .badge-strong { border-color: var(--orange); color: var(--orange); }
    .badge-mid { border-color: var(--yellow); color: var(--yellow); }
    .badge-everyday { border-color: var(--lowgray); color: var(--lowgray); }
    .image-wrapper {
      width: 100%;
      display: flex;
      justify-content: center;
      align-items: center;
      padding-top: 6px;
    }
    .image-wrapper img { max-width: 100%; max-height: 160px; object-fit: contain; }
    .deal-body { display: flex; flex-direction: column; gap: 6px; }
    .deal-title { font-size: 0.9rem; margin: 0; line-height: 1.3; min-height: 2.6em; }
    .deal-meta { display: flex; flex-wrap: wrap; gap: 6px; font-size: 0.75rem; }
    .retailer-pill, .category-pill {
      padding: 2px 8px;
      border-radius: 999px;
      background: #f0f1f7;
    }
    .retailer-walmart { background: #e7f0fd; color: #1a4fa0; }
    .retailer-kroger { background: #e8f3fe; color: #175fa9; }
    .retailer-target { background: #fdeaea; color: #b3282d; }
    .pack-pill {
      align-self: flex-start;
      padding: 2px 8px;
      border-radius: 999px;
      background: #eef7f0;
      font-size: 0.72rem;
      color: #2f7d44;
    }
    .price-row { display: flex; align-items: baseline; gap: 6px; font-size: 0.9rem; }
    .old-price { color: var(--danger); text-decoration: line-through; font-size: 0.8rem; }
    .new-price { color: var(--accent); font-weight: 700; }
    .percent-off { font-weight: 600; font-size: 0.78rem; }
    .availability { font-size: 0.72rem; color: var(--text-muted); }
    .streak { font-size: 0.72rem; color: var(--text-muted); }
    .flavors { font-size: 0.74rem; color: var(--text-muted); }
    .flavors a { color: inherit; }
    .flavor-extra { display: none; }
    .flavors details summary { cursor: pointer; }
    .view-button {
      margin-top: 4px;
      display: inline-block;
      font-size: 0.8rem;
      text-decoration: none;
      padding: 6px 10px;
      border-radius: 6px;
      background: #1a73e8;
      color: #ffffff;
      text-align: center;
      font-weight: 500;
    }
    .view-button:hover { background: #1558ad; }
    .view-walmart { background: #0071dc; }
    .view-kroger { background: #0f5dab; }
    .view-target { background: #cc0000; }
    @media (max-width: 600px) {
      header { padding: 10px 12px; }
      main { padding: 12px 8px 28px; }
      .deal-card { padding: 8px 8px 10px; }
      .image-wrapper img { max-height: 140px; }
    }
  </style>
</head>
<body>
  <header>
    <div class="header-inner">
      <h1>{{.Site.Title}}</h1>
      <div class="subtitle">{{.Site.Subtitle}}</div>
    </div>
  </header>
  <main>
    <div class="updated">Last updated: {{.Updated}}</div>
    <div class="filters">
      <div class="filter-pill">Sorted by: Retailer &rarr; Category &rarr; Best savings</div>
      <div class="filter-pill">Showing {{.Count}} deals</div>
    </div>
    <section class="grid">
{{- range .Cards}}
      <article class="deal-card">
{{- if .BadgeLabel}}
        <div class="{{.BadgeClass}}">{{.BadgeLabel}}</div>
{{- end}}
        <div class="image-wrapper">
          <img src="{{.ImageURL}}" alt="{{.Name}}">
        </div>
        <div class="deal-body">
          <h2 class="deal-title">{{.Name}}</h2>
          <div class="deal-meta">
            <span class="{{.RetailerPill}}">{{.Retailer}}</span>
            <span class="category-pill">{{.Category}}</span>
          </div>
{{- if .Pack}}
          <div class="pack-pill">{{.Pack}}</div>
{{- end}}
          <div class="price-row">
{{- if .OldPrice}}
            <span class="old-price">{{.OldPrice}}</span>
{{- end}}
            <span class="new-price">{{.NewPrice}}</span>
{{- if .PercentOff}}
            <span class="percent-off">{{.PercentOff}}</span>
{{- end}}
          </div>
          <div class="{{.AvailabilityClass}}">{{.Availability}}</div>
{{- if .Streak}}
          <div class="streak">{{.Streak}}</div>
{{- end}}
{{- if .FlavorSample}}
          <div class="flavors">
            Flavors:
{{- range $i, $f := .FlavorSample}}{{if $i}},{{end}}
            <a href="{{$f.URL}}" target="_blank" rel="noopener noreferrer">{{$f.Name}}</a>
{{- end}}
{{- if .FlavorExtra}}
            <details>
              <summary>+{{len .FlavorExtra}} more</summary>
{{- range $i, $f := .FlavorExtra}}{{if $i}},{{end}}
              <a href="{{$f.URL}}" target="_blank" rel="noopener noreferrer">{{$f.Name}}</a>
{{- end}}
            </details>
{{- end}}
          </div>
{{- end}}
          <a class="{{.ViewButton}}" href="{{.RetailerURL}}" target="_blank" rel="noopener noreferrer">
            View at {{.Retailer}}
          </a>
        </div>
      </article>
{{- end}}
    </section>
  </main>
</body>
</html>
`
