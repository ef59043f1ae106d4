package k8s

const (
	// PodDeletionCostAnnotation makes the ReplicaSet controller delete the annotated pods first.
	PodDeletionCostAnnotation = "controller.kubernetes.io/pod-deletion-cost"

	removalDeletionCost = "-1000"
)
