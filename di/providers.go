package di

import (
	directoryService "frontdesk/internal/domains/directory/service"
	scheduleService "frontdesk/internal/domains/schedule/service"
)

// provideNameResolver adapts the directory service to the schedule engine's
// name-resolution dependency.
func provideNameResolver(directory directoryService.Directory) scheduleService.NameResolver {
	return directory
}
