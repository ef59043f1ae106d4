package reconciler

// percentScale converts a usage/limit ratio into a percentage (0.8 -> 80).
const percentScale = 100
