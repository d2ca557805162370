package statsview
