package clustercheck

// StatusCmd prints the one-shot cluster status including inactive resources.
const StatusCmd = "crm_mon -r1"

// unbullet drops the "* " prefix pacemaker 2 puts in front of status lines,
// so awk field positions match both output formats.
const unbullet = `{sub(/^[ \t]*\* /,"")}`

// pipe appends filter to the status source, defaulting to StatusCmd.
func pipe(status, filter string) string {
	if status == "" {
		status = StatusCmd
	}
	return status + " | " + filter
}
