package main

import "github.com/BrandonKowalski/confkit/pkg/confkit"

var (
	displayIcon = confkit.Icon{Name: "display", SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#FFFFFF" d="M3 4h18v12H3z M5 6v8h14V6z M9 18h6v2H9z"/></svg>`)}

	speakerIcon = confkit.Icon{Name: "speaker", SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#FFFFFF" d="M3 9h4l5-4v14l-5-4H3z M15 8a5 5 0 0 1 0 8v-2a3 3 0 0 0 0-4z"/></svg>`)}

	paletteIcon = confkit.Icon{Name: "palette", SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#FFFFFF" d="M12 3a9 9 0 1 0 0 18c1.1 0 2-.9 2-2 0-.5-.2-1-.5-1.3-.3-.4-.5-.8-.5-1.2 0-1.1.9-2 2-2h2.5A4.5 4.5 0 0 0 22 10c0-3.9-4.5-7-10-7z"/></svg>`)}

	networkIcon = confkit.Icon{Name: "network", SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#FFFFFF" d="M10 3h4v4h-1v3h6v4h1v4h-4v-4h1v-2H7v2h1v4H4v-4h1v-4h6V7h-1z"/></svg>`)}
)
