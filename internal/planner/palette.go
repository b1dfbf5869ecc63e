package planner

// zoneColors is the cyclic palette routes are assigned colors from, by
// position: route i gets zoneColors[i % len(zoneColors)].
var zoneColors = []string{
	"#e74c3c",
	"#3498db",
	"#2ecc71",
	"#f39c12",
	"#9b59b6",
	"#1abc9c",
	"#e67e22",
	"#34495e",
	"#c0392b",
	"#2980b9",
	"#27ae60",
	"#d35400",
	"#8e44ad",
	"#16a085",
	"#f1c40f",
	"#7f8c8d",
	"#2c3e50",
	"#d63031",
	"#0984e3",
	"#00b894",
}

func colorForRoute(i int) string {
	return zoneColors[i%len(zoneColors)]
}
