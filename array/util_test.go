package array

import "github.com/superjamie/lcl/api"
import "github.com/superjamie/lcl/malloc"

func mallocers() []api.Mallocer {
	return []api.Mallocer{malloc.NewCmalloc(), malloc.NewGomalloc()}
}
