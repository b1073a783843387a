package pulsegame

import (
	"github.com/33cn/pulsegame/plugin/dapp/pulsegame/commands"
	"github.com/33cn/pulsegame/plugin/dapp/pulsegame/executor"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     pgt.PulsegameX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.PulsegameCmd,
	})
}
