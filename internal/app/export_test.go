package app

// SleepContext exports the default cooldown wait for testing.
var SleepContext = sleepContext
