package container_test

import (
	"github.com/i5heu/boundedkit/internal/container"
	"github.com/i5heu/boundedkit/pkg/boundedqueue"
	"github.com/i5heu/boundedkit/pkg/boundedstack"
	"github.com/i5heu/boundedkit/pkg/linearlist"
)

var (
	_ container.QueueValidationInterface      = (*boundedqueue.Queue)(nil)
	_ container.StackValidationInterface      = (*boundedstack.Stack)(nil)
	_ container.ListValidationInterface       = (*linearlist.List)(nil)
	_ container.SortedListValidationInterface = (*linearlist.List)(nil)
)
