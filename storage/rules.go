package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

var ErrRulesNotFound = errors.New("storage: rules preset not found")

const (
	dialTimeout = 5 * time.Second
	leaseTTL    = 60 * time.Second
)

// ETCDRules 规则预设存储,按名字存取,租约到期自动清理
type ETCDRules struct {
	modules.Base
	cli           *clientv3.Client
	etcdEndpoints []string
	etcdPrefix    string
	leaseID       clientv3.LeaseID
	stopChan      chan struct{}
}

func NewETCDRules(endpoints []string, prefix string) *ETCDRules {
	return &ETCDRules{
		etcdEndpoints: endpoints,
		etcdPrefix:    prefix,
		stopChan:      make(chan struct{}),
	}
}

func rulesKey(name string) string {
	return fmt.Sprintf("rules/%s", name)
}

// Put 写入一个规则预设
func (b *ETCDRules) Put(name string, rules mahjong.Rules) error {
	value, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = b.cli.Put(context.Background(), rulesKey(name), string(value), clientv3.WithLease(b.leaseID))
	return err
}

func (b *ETCDRules) Remove(name string) error {
	_, err := b.cli.Delete(context.Background(), rulesKey(name))
	return err
}

// Get 按名字取规则预设
func (b *ETCDRules) Get(name string) (mahjong.Rules, error) {
	etcdRes, err := b.cli.Get(context.Background(), rulesKey(name))
	if err != nil {
		return mahjong.Rules{}, err
	}
	if len(etcdRes.Kvs) == 0 {
		return mahjong.Rules{}, ErrRulesNotFound
	}

	rules := mahjong.DefaultRules()
	err = json.Unmarshal(etcdRes.Kvs[0].Value, &rules)
	return rules, err
}

func (b *ETCDRules) watchLeaseChan(c <-chan *clientv3.LeaseKeepAliveResponse) {
	for {
		select {
		case <-b.stopChan:
			return
		case kaRes := <-c:
			if kaRes == nil {
				logger.Log.Warn("[rules storage] error renewing etcd lease, rebootstrapping")
				for {
					err := b.bootstrapLease()
					if err != nil {
						logger.Log.Warn("[rules storage] error rebootstrapping lease, will retry in 5 seconds")
						time.Sleep(5 * time.Second)
						continue
					} else {
						return
					}
				}
			}
		}
	}
}

func (b *ETCDRules) bootstrapLease() error {
	l, err := b.cli.Grant(context.TODO(), int64(leaseTTL.Seconds()))
	if err != nil {
		return err
	}
	b.leaseID = l.ID
	logger.Log.Debugf("[rules storage] got leaseID: %x", l.ID)
	c, err := b.cli.KeepAlive(context.TODO(), b.leaseID)
	if err != nil {
		return err
	}
	// need to receive here as per etcd docs
	<-c
	go b.watchLeaseChan(c)
	return nil
}

// Init 建立etcd连接并取得租约
func (b *ETCDRules) Init() error {
	if b.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   b.etcdEndpoints,
			DialTimeout: dialTimeout,
		})
		if err != nil {
			return err
		}
		b.cli = cli
	}
	b.cli.KV = namespace.NewKV(b.cli.KV, b.etcdPrefix)
	return b.bootstrapLease()
}

// Shutdown 关闭连接
func (b *ETCDRules) Shutdown() error {
	close(b.stopChan)
	return b.cli.Close()
}
