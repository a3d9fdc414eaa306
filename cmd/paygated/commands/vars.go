package commands

import "github.com/slackernews/paygate/common/constants"

const ClientIdentifier = constants.PayGateName

var (
	cfgName     string
	clusterName string
)
