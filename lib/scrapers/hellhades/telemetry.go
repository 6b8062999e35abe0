package hellhades

import (
	"raidchampions/lib/telemetry"
)

var tracer = telemetry.Tracer("raidchampions.lib.scrapers.hellhades")
