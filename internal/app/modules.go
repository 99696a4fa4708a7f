package app

import (
	"github.com/specialistvlad/domprops/internal/registry"
	"github.com/specialistvlad/domprops/modules/html"
	"github.com/specialistvlad/domprops/modules/svg"
)

// coreModules is the list of attribute families compiled into the binary.
var coreModules = []registry.Module{
	&html.Module{},
	&svg.Module{},
}
