package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
