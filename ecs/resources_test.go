package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type Score struct {
	Value int
}

type Lives struct {
	Value int
}

type Namer interface {
	Name() string
}

type staticName string

func (s staticName) Name() string {
	return string(s)
}

func TestResources_InsertAndGet(t *testing.T) {
	var res Resources

	InsertResource(&res, uint32(42))
	InsertResource(&res, "hello")

	value, ok := Resource[uint32](&res)
	require.True(t, ok)
	require.Equal(t, uint32(42), value)

	str, ok := Resource[string](&res)
	require.True(t, ok)
	require.Equal(t, "hello", str)

	_, ok = Resource[int](&res)
	require.False(t, ok)
}

func TestResources_InsertReplaces(t *testing.T) {
	var res Resources

	InsertResource(&res, Score{Value: 1})
	old, _ := ResourceMut[Score](&res)

	InsertResource(&res, Score{Value: 2})

	value, _ := Resource[Score](&res)
	require.Equal(t, 2, value.Value)
	require.Equal(t, 1, res.Len())

	// the replaced value was detached
	require.Equal(t, 1, old.Value)
}

func TestResources_Mutate(t *testing.T) {
	var res Resources

	InsertResource(&res, []int{1, 2, 3})

	values, ok := ResourceMut[[]int](&res)
	require.True(t, ok)
	*values = append(*values, 4)

	list, _ := Resource[[]int](&res)
	require.Len(t, list, 4)
}

func TestResources_Remove(t *testing.T) {
	var res Resources

	InsertResource(&res, Score{Value: 99})

	value, ok := RemoveResource[Score](&res)
	require.True(t, ok)
	require.Equal(t, Score{Value: 99}, value)
	require.False(t, HasResource[Score](&res))

	_, ok = RemoveResource[Score](&res)
	require.False(t, ok)
}

func TestResources_TypeIsolation(t *testing.T) {
	var res Resources

	InsertResource(&res, Score{Value: 1})
	InsertResource(&res, Lives{Value: 3})

	score, _ := ResourceMut[Score](&res)
	score.Value = 10

	lives, _ := Resource[Lives](&res)
	require.Equal(t, 3, lives.Value)

	// pointer and value types are distinct keys
	InsertResource(&res, &Lives{Value: 7})
	lives, _ = Resource[Lives](&res)
	require.Equal(t, 3, lives.Value)
	require.Equal(t, 3, res.Len())
}

func TestResources_InterfaceType(t *testing.T) {
	var res Resources

	InsertResource[Namer](&res, staticName("player"))

	namer, ok := Resource[Namer](&res)
	require.True(t, ok)
	require.Equal(t, "player", namer.Name())

	// the dynamic type is a different key
	require.False(t, res.Contains(reflect.TypeFor[staticName]()))
}

func TestResources_Untyped(t *testing.T) {
	var res Resources

	res.Insert(Score{Value: 5})
	require.True(t, res.Contains(reflect.TypeFor[Score]()))

	ptr, ok := res.Get(reflect.TypeFor[Score]())
	require.True(t, ok)
	require.Equal(t, 5, ptr.(*Score).Value)

	require.True(t, res.Remove(reflect.TypeFor[Score]()))
	require.False(t, res.Remove(reflect.TypeFor[Score]()))
}
