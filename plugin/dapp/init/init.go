package init

import (
	_ "github.com/33cn/pulsegame/plugin/dapp/pulsegame" //auto gen
)
