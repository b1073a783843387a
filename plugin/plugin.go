package plugin

import (
	_ "github.com/33cn/pulsegame/plugin/dapp/init" //auto gen
)
