package model

// Version is the taskmenu release version.
var Version = "0.3.0"
