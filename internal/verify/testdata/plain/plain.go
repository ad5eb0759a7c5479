package plain

func Fields() {}
