package executor

import (
	log "github.com/inconshreveable/log15"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	drivers "github.com/33cn/pulsegame/system/dapp"
	"github.com/33cn/pulsegame/types"
)

var (
	glog       = log.New("module", "execs.pulsegame")
	driverName = pgt.PulsegameX
)

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Pulsegame{}))
}

// Init 注册执行器
func Init(name string, sub []byte) {
	drivers.Register(driverName, newPulsegame, 0)
}

// GetName 获取执行器名
func GetName() string {
	return newPulsegame().GetName()
}

// Pulsegame 承诺披露式二元竞猜执行器，以外部随机脉冲结算
type Pulsegame struct {
	drivers.DriverBase
}

func newPulsegame() drivers.Driver {
	t := &Pulsegame{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

// GetDriverName 获取driver名
func (g *Pulsegame) GetDriverName() string {
	return driverName
}
