package commands

type PanAlertCommand struct {
	Scan    ScanCommand    `command:"scan" description:"Scan directories for payment card numbers"`
	Version VersionCommand `command:"version" description:"Displays pan-alert version" alias:"V"`
}

var PanAlert PanAlertCommand
