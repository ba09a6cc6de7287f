package web

import (
	"html/template"
	"io"
)

// PageData holds everything the map page template needs: view defaults
// from config, the server-built legend, and the data bound when the
// zone load succeeded.
type PageData struct {
	Title           string
	Legend          template.HTML
	TileURL         string
	TileAttribution string
	CenterLat       float64
	CenterLng       float64
	Zoom            int
	FitPadding      int
	HoverOpacity    float64

	HasBounds bool
	SWLat     float64
	SWLng     float64
	NELat     float64
	NELng     float64
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// RenderPage writes the full map page
func RenderPage(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8"/>
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
	html, body { margin:0; height:100%; }
	#map { height:100vh; width:100vw; }
	#legend {
		position:fixed; bottom:20px; right:10px; z-index:1000;
		background:rgba(255,255,255,0.92); padding:10px 12px;
		border-radius:5px; box-shadow:0 0 6px rgba(0,0,0,0.3);
		font-family:sans-serif; font-size:12px;
	}
	.dss-badge { white-space:nowrap; }
</style>
</head>
<body>
	<div id="map"></div>
	<div id="legend">{{.Legend}}</div>
<script>
	var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLng}}], {{.Zoom}});
	L.tileLayer('{{.TileURL}}', {attribution: {{.TileAttribution}}}).addTo(map);
{{if .HasBounds}}
	map.fitBounds([[{{.SWLat}}, {{.SWLng}}], [{{.NELat}}, {{.NELng}}]], {padding: [{{.FitPadding}}, {{.FitPadding}}]});
{{end}}
	// Shared reference to the active data layer, set once after load.
	// Hover-exit handlers read it to restore that zone's default style.
	var zoneLayer = null;
	fetch('/api/zones')
		.then(function (resp) {
			if (!resp.ok) { throw new Error('HTTP ' + resp.status); }
			return resp.json();
		})
		.then(function (data) {
			zoneLayer = L.geoJSON(data, {
				style: function (f) { return f.properties._style; },
				onEachFeature: function (f, layer) {
					layer.bindPopup(f.properties._popup);
					layer.on('mouseover', function (e) {
						e.target.setStyle({fillOpacity: {{.HoverOpacity}}});
					});
					layer.on('mouseout', function (e) {
						if (zoneLayer) { zoneLayer.resetStyle(e.target); }
					});
				}
			}).addTo(map);
			map.fitBounds(zoneLayer.getBounds(), {padding: [{{.FitPadding}}, {{.FitPadding}}]});
		})
		.catch(function (err) {
			console.error('Failed to load zone data:', err);
			alert('Could not load zone data (' + err.message + '). ' +
				'Make sure the page is served over HTTP and the zone GeoJSON file exists on the server.');
		});
</script>
</body>
</html>`
