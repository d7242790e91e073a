package cli

const (
	cmdUser  = "user"
	cmdHost  = "host"
	cmdTopic = "topic"

	subNew        = "new"
	subRename     = "ren"
	subDelete     = "del"
	subJoin       = "join"
	subLeave      = "leave"
	subRegister   = "register"
	subUnregister = "unregister"

	optHelp      = "--help"
	optHelpShort = "-h"
	optVersion   = "--version"
)

const mainHelp = `usage:
    kcc user
    kcc host
    kcc topic
    kcc </topic> <msg>
    kcc </topic>
    kcc </topic/#>
    kcc </topic/user>
    kcc </topic/user/#>
    kcc -h | --help
    kcc --version

options:
    -c -config <file>   Read settings from a JSON file
    -d <dir>            Data directory (default ~/.kcc)
    -n <count>          Messages shown when a query has no count (default 10)
    -l <level>          Log level: debug, info, warn, error (default warn)
    -no-color           Disable coloured output
    -h --help           Show this screen
    --version           Show version`

const userHelp = `usage:
    kcc user
    kcc user new <name>
    kcc user ren <name>
    kcc user del
    kcc user -h | --help

options:
    -h --help   Show this screen`

const hostHelp = `usage:
    kcc host
    kcc host register <url>
    kcc host unregister
    kcc host -h | --help

options:
    -h --help   Show this screen`

const topicHelp = `usage:
    kcc topic
    kcc topic new <name>
    kcc topic join <name>
    kcc topic leave <name>
    kcc topic del <name>
    kcc topic -h | --help

options:
    -h --help   Show this screen`

func isHelp(arg string) bool {
	return arg == optHelp || arg == optHelpShort
}
