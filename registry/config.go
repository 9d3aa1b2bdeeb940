package registry

const namedLogger = "registry"
