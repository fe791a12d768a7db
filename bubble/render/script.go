// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Script is the browser side of the interactive viewer. It expects
// the chart from SVG inline in the page. It forwards pointer events
// on data circles and category legend items to the websocket at
// /events and applies each Delta the server sends back.
const Script = `
(function() {
	var svg = document.querySelector("svg");
	var chart = svg.querySelector("g");
	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	var ws = new WebSocket(proto + location.host + "/events");

	function send(kind, evt, target) {
		if (ws.readyState !== WebSocket.OPEN) {
			return;
		}
		// Convert to chart coordinates.
		var pt = svg.createSVGPoint();
		pt.x = evt.clientX;
		pt.y = evt.clientY;
		pt = pt.matrixTransform(chart.getScreenCTM().inverse());
		ws.send(JSON.stringify({kind: kind, x: pt.x, y: pt.y, target: target}));
	}

	svg.querySelectorAll(".bubbles").forEach(function(el) {
		var id = el.getAttribute("data-id");
		el.addEventListener("mouseenter", function(e) { send("enter", e, id); });
		el.addEventListener("mousemove", function(e) { send("move", e, id); });
		el.addEventListener("mouseleave", function(e) { send("leave", e, id); });
	});
	svg.querySelectorAll(".group").forEach(function(el) {
		var g = el.getAttribute("data-group");
		el.addEventListener("mouseenter", function(e) { send("groupenter", e, g); });
		el.addEventListener("mouseleave", function(e) { send("groupleave", e, g); });
	});

	ws.onmessage = function(msg) {
		var d = JSON.parse(msg.data);
		if (d.tooltip) {
			var tt = document.getElementById("tooltip");
			var text = document.getElementById("tooltip-text");
			text.textContent = d.tooltip.text;
			tt.setAttribute("display", d.tooltip.visible ? "inline" : "none");
			tt.setAttribute("transform", "translate(" + d.tooltip.x + "," + d.tooltip.y + ")");
			tt.querySelector("rect").setAttribute("width", text.getComputedTextLength() + 20);
		}
		if (d.opacity) {
			svg.querySelectorAll(".bubbles, .group").forEach(function(el) {
				var o = d.opacity[el.getAttribute("data-group")];
				if (o !== undefined) {
					el.setAttribute("opacity", o);
				}
			});
		}
	};
})();
`
